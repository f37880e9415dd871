// Command fixnumgen expands decimal literals into fixnum.FromRaw calls.
//
// It parses each NAME=LITERAL pair with the runtime parser and writes a
// Go source file of package-level variables, so that generated constants
// are guaranteed to equal what Parse would produce at run time:
//
//	//go:generate fixnumgen -p rates -o rates_gen.go Fee=0.000_25 Tick=0.5
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fixnum/fixnum"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		pkg string
		out string
	)
	cmd := &cobra.Command{
		Use:           "fixnumgen [flags] NAME=LITERAL ...",
		Short:         "generate fixnum constants from decimal literals",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := generate(pkg, args)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(out, src, 0o644)
		},
	}
	cmd.Flags().StringVarP(&pkg, "package", "p", "main", "package name of the generated file")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func generate(pkg string, pairs []string) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by fixnumgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/fixnum/fixnum\"\n\n")
	fmt.Fprintf(&b, "var (\n")
	for _, pair := range pairs {
		name, lit, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q is not a NAME=LITERAL pair", pair)
		}
		d, err := fixnum.Parse(lit)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		hi, lo := d.Raw()
		fmt.Fprintf(&b, "\t%s = fixnum.FromRaw(%d, %d) // %s\n", name, hi, lo, d)
	}
	fmt.Fprintf(&b, ")\n")
	return b.Bytes(), nil
}
