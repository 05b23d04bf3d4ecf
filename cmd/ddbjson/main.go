// Command ddbjson converts between DynamoDB JSON and normal JSON.
//
// Usage:
//
//	ddbjson <from-ddb|to-ddb> [-i INPUT] [-o OUTPUT] [-p] [-without-item] [-v]
//
// Input is read from stdin and output written to stdout unless files are
// given. A .jsonl input file, or a first line that parses as a complete
// JSON value, selects line-oriented mode: one document per line, blank
// lines skipped. Anything else is treated as one document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	modeFromDDB = "from-ddb"
	modeToDDB   = "to-ddb"
)

type options struct {
	mode        string
	input       string
	output      string
	pretty      bool
	withoutItem bool
}

// parseArgs reads the conversion mode and flags from the command line.
// The mode is positional and normally comes first, as in
// `ddbjson from-ddb -i items.json`. Leading flags are accepted too; the
// flag package stops parsing at the first non-flag argument, so the mode
// has to be split off before the flags are parsed.
func parseArgs(args []string, errOut io.Writer) (options, bool, error) {
	var (
		opts    options
		verbose bool
	)

	fs := flag.NewFlagSet("ddbjson", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"usage: ddbjson <from-ddb|to-ddb> [flags]\n\nConvert between DynamoDB JSON and normal JSON formats.\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.input, "i", "", "input file (stdin if not specified)")
	fs.StringVar(&opts.input, "input", "", "input file (stdin if not specified)")
	fs.StringVar(&opts.output, "o", "", "output file (stdout if not specified)")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if not specified)")
	fs.BoolVar(&opts.pretty, "p", false, "pretty print output JSON")
	fs.BoolVar(&opts.pretty, "pretty", false, "pretty print output JSON")
	fs.BoolVar(&opts.withoutItem, "without-item", false,
		"omit top-level 'Item' wrapper (only applies to to-ddb mode)")
	fs.BoolVar(&verbose, "v", false, "debug logging to stderr")
	fs.BoolVar(&verbose, "verbose", false, "debug logging to stderr")

	rest := args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.mode = args[0]
		rest = args[1:]
	}

	if err := fs.Parse(rest); err != nil {
		return opts, false, err
	}

	if opts.mode == "" {
		if fs.NArg() == 0 {
			fs.Usage()
			return opts, false, errors.New("missing conversion mode")
		}

		opts.mode = fs.Arg(0)

		if fs.NArg() > 1 {
			return opts, false, fmt.Errorf("unexpected argument %q", fs.Arg(1))
		}
	} else if fs.NArg() != 0 {
		return opts, false, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if opts.mode != modeFromDDB && opts.mode != modeToDDB {
		return opts, false, fmt.Errorf("invalid mode %q, expected %s or %s",
			opts.mode, modeFromDDB, modeToDDB)
	}

	return opts, verbose, nil
}

func main() {
	opts, verbose, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(2)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	in := os.Stdin

	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer f.Close()

		in = f
	}

	out := os.Stdout

	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}

		out = f
	}

	err := convert(in, out, opts)

	// A failed close on the output file can lose buffered data even after
	// a clean conversion; stdout is left open.
	if out != os.Stdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}

	return err
}
