package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Options configures Run.
type Options struct {
	// Files are the Go source files to scan.
	Files []string

	// Output overrides the generated file name. Only valid with a single
	// input file.
	Output string

	// Check compares generated output with the existing files instead of
	// writing them, reporting ErrStale for each difference.
	Check bool
}

// Run generates constants for every file in opts.Files that contains
// directives. Files without directives are skipped. Errors from all files
// are reported together.
func Run(ctx context.Context, opts Options) error {
	if len(opts.Files) == 0 {
		return errors.New("no input files")
	}
	if opts.Output != "" && len(opts.Files) != 1 {
		return fmt.Errorf("output file given for %d inputs, want 1", len(opts.Files))
	}

	var errs []error
	for _, name := range opts.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		out := opts.Output
		if out == "" {
			out = OutputPath(name)
		}
		if err := generateFile(name, out, opts.Check); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func generateFile(name, out string, check bool) error {
	f, err := ParseFile(name, nil)
	if err != nil {
		Logger().Debug("rejected source", zap.String("file", name), zap.Error(err))
		return err
	}
	if len(f.Constants) == 0 {
		Logger().Debug("no directives", zap.String("file", name))
		return nil
	}

	src, err := Render(f)
	if err != nil {
		return err
	}

	if check {
		existing, err := os.ReadFile(out)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if !bytes.Equal(existing, src) {
			return fmt.Errorf("%s: %w", out, ErrStale)
		}
		Logger().Debug("up to date", zap.String("file", out))
		return nil
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return err
	}
	Logger().Info("generated constants",
		zap.String("source", name),
		zap.String("output", out),
		zap.Int("constants", len(f.Constants)),
	)
	return nil
}
