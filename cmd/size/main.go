// size is a CLI tool that reports the text/data/bss footprint of
// compiled ELF, PE/COFF and Mach-O binaries.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mozilla/rust-size/pkg/size"
)

type options struct {
	all      bool
	sections bool
	human    bool
	output   string
	noColor  bool
	debug    bool
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "size [flags] <object-file>...",
		Short:         "Report the text/data/bss size of ELF, PE and Mach-O binaries",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return run(&opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.all, "all", "A", false, "report per-section sizes grouped by category")
	flags.BoolVarP(&opts.sections, "sections", "s", false, "list every classified section in a table")
	flags.BoolVarP(&opts.human, "human", "H", false, "print humanized sizes in the section table")
	flags.StringVarP(&opts.output, "output", "o", "json", "structured output format for --all (json or yaml)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

func run(opts *options, paths []string) error {
	colored := !opts.noColor && isatty.IsTerminal(os.Stdout.Fd())

	wroteHeader := false
	for _, path := range paths {
		f, err := size.Open(path)
		if err != nil {
			return err
		}
		err = report(opts, f, colored, &wroteHeader)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func report(opts *options, f *size.File, colored bool, wroteHeader *bool) error {
	switch {
	case opts.all:
		groups, err := f.Groups()
		if err != nil {
			return err
		}
		return size.WriteGroups(os.Stdout, groups, opts.output)

	case opts.sections:
		sections, err := f.Sections()
		if err != nil {
			return err
		}
		size.WriteSectionTable(os.Stdout, sections, opts.human, colored)
		return nil

	default:
		totals, err := f.Totals()
		if err != nil {
			return err
		}
		if !*wroteHeader {
			if err := size.WriteLegacyHeader(os.Stdout); err != nil {
				return err
			}
			*wroteHeader = true
		}
		return size.WriteLegacyRow(os.Stdout, totals, f.Path())
	}
}
