// Command blend merges JSON and YAML documents.
//
//	blend [OPTIONS] TARGET [SOURCE...]
//
// The sources are merged into the target from left to right and the result is
// written to stdout. A path of "-" reads a document from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/hashicorp/go-hclog"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/dysfunc/blend"
)

type options struct {
	Deep     bool   `short:"d" long:"deep" description:"Merge nested mappings recursively and concatenate sequences"`
	Unique   bool   `short:"u" long:"unique" description:"Like --deep, and drop duplicate values from concatenated sequences"`
	Strategy string `short:"s" long:"strategy" description:"Merge strategy by name, overrides --deep and --unique" choice:"shallow" choice:"deep" choice:"unique"`
	Format   string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Expect   string `short:"e" long:"expect" description:"Fail unless the result equals the document in FILE" value-name:"FILE"`
	Verbose  bool   `short:"v" long:"verbose" description:"Log merge decisions to stderr"`

	Args struct {
		Target  string   `positional-arg-name:"TARGET" required:"yes"`
		Sources []string `positional-arg-name:"SOURCE"`
	} `positional-args:"yes"`
}

var ErrUnexpectedResult = errors.New("result differs from expected document")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "blend"
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	level := hclog.Warn
	if opts.Verbose {
		level = hclog.Trace
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "blend",
		Level:  level,
		Output: stderr,
	})

	if err := execute(&opts, logger, stdin, stdout); err != nil {
		logger.Error("merge failed", "error", err)
		return 1
	}
	return 0
}

func execute(opts *options, logger hclog.Logger, stdin io.Reader, stdout io.Writer) error {
	registry := blend.NewMergersRegistry(blend.WithLogger(logger.Named("merge")))
	name := strategyName(opts)
	merger, ok := registry.Get(name)
	if !ok {
		return errors.Errorf("unknown strategy %q", name)
	}

	target, err := readDocument(opts.Args.Target, stdin)
	if err != nil {
		return err
	}
	sources := make([]interface{}, 0, len(opts.Args.Sources))
	for _, path := range opts.Args.Sources {
		doc, err := readDocument(path, stdin)
		if err != nil {
			return err
		}
		sources = append(sources, doc)
	}
	logger.Debug("merging documents", "strategy", name, "sources", len(sources))

	result, err := merger.Merge(target, sources...)
	if err != nil {
		return errors.Wrap(err, "merge")
	}

	if opts.Expect != "" {
		if err := expect(result, opts.Expect, stdin); err != nil {
			return err
		}
	}
	return encodeDocument(stdout, result, opts.Format)
}

func strategyName(opts *options) string {
	switch {
	case opts.Strategy != "":
		return opts.Strategy
	case opts.Unique:
		return blend.PolicyDeepUnique.String()
	case opts.Deep:
		return blend.PolicyDeep.String()
	default:
		return blend.PolicyShallow.String()
	}
}

func expect(result interface{}, path string, stdin io.Reader) error {
	want, err := readDocument(path, stdin)
	if err != nil {
		return err
	}
	a, err := toJSON(result)
	if err != nil {
		return err
	}
	b, err := toJSON(want)
	if err != nil {
		return err
	}
	if !jsonpatch.Equal(a, b) {
		return errors.Wrapf(ErrUnexpectedResult, "compare with %s", path)
	}
	return nil
}
