package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/codec"
	"cssel/state"
)

// Run implements the build subcommand: reads descriptor file(s) given
// as arguments, renders every selector and writes the results to the
// destination. Per-file failures do not stop processing of the
// remaining files and are reported together at the end.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return errors.New("nothing to do, no descriptor files specified")
	}

	combinator := env.Cfg.Build.DefaultCombinator
	if c := cmd.String("combinator"); c != "" {
		combinator = c
	}

	var (
		results []Rendered
		errs    error
	)
	for _, fname := range cmd.Args().Slice() {
		data, err := os.ReadFile(fname)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read descriptor file '%s': %w", fname, err))
			continue
		}
		doc, err := ParseDocument(data)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fname, err))
			continue
		}
		rendered, err := doc.Render(combinator)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fname, err))
			continue
		}
		env.Log.Debug("Rendered descriptor file", zap.String("file", fname), zap.Int("selectors", len(rendered)))
		results = append(results, rendered...)
	}

	if len(results) > 0 {
		text, err := formatResults(results, cmd.Bool("ion"))
		if err != nil {
			return multierr.Append(errs, err)
		}
		if err := writeResults(cmd.String("output"), text); err != nil {
			return multierr.Append(errs, err)
		}
		env.Log.Info("Selectors rendered", zap.Int("count", len(results)), zap.Duration("elapsed", env.Uptime()))
	}
	return errs
}

// formatResults renders the output payload: Ion text of the full
// records or plain selector-per-line text.
func formatResults(results []Rendered, asIon bool) (string, error) {
	if asIon {
		text, err := codec.Encode(results)
		if err != nil {
			return "", fmt.Errorf("unable to encode results: %w", err)
		}
		return text + "\n", nil
	}
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Selector)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func writeResults(fname, text string) error {
	if fname == "" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write destination file '%s': %w", fname, err)
	}
	return nil
}
