package state

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.Uptime() < 0 {
		t.Errorf("Uptime() = %v, want non-negative", env.Uptime())
	}

	// same env on repeated lookups
	if EnvFromContext(ctx) != env {
		t.Error("EnvFromContext() returned different env for same context")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnvFromContext() on bare context did not panic")
		}
	}()
	EnvFromContext(context.Background())
}

func TestStdLogRedirect_NilLog(t *testing.T) {
	env := &LocalEnv{}
	// both must be no-ops without a logger
	env.RedirectStdLog()
	env.RestoreStdLog()
}
