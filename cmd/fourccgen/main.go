// fourccgen validates four-character code literals at build time and emits
// them as typed constants.
//
// It reads //fourcc:const directives from Go source files:
//
//	//go:generate go run github.com/zoobzio/fourcc/cmd/fourccgen $GOFILE
//
//	//fourcc:const KindHex "hex_"
//
// and writes name_fourcc.go beside each file. An invalid literal is printed
// as a file:line:col diagnostic and the command exits non-zero, failing go
// generate before the constant can be used.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/zoobzio/fourcc/generate"
)

// version is set via -ldflags at build time.
var version = "0.1.0-dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fourccgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts generate.Options
	var verbose bool

	flagSet := pflag.NewFlagSet("fourccgen", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.Output, "output", "o", "", "write generated code to this file (single input only)")
	flagSet.BoolVar(&opts.Check, "check", false, "report out-of-date generated files instead of writing them")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log each file processed")
	flagSet.Bool("version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if v, _ := flagSet.GetBool("version"); v {
		fmt.Printf("fourccgen %s\n", version)
		return nil
	}

	opts.Files = flagSet.Args()
	if len(opts.Files) == 0 {
		// go generate names the file holding the directive.
		if gofile := os.Getenv("GOFILE"); gofile != "" {
			opts.Files = []string{gofile}
		}
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		generate.SetLogger(logger)
	}

	return generate.Run(context.Background(), opts)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `fourccgen turns //fourcc:const directives into fourcc.Code constants.

Usage:
  fourccgen [flags] file.go...

With no file arguments, the file named by $GOFILE is used, which is what
go generate sets.

Directive:
  //fourcc:const Name "abcd"

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
