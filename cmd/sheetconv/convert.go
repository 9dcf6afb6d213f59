package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/sheetconv/pkg/sheetconv"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/output"
)

type convertFlags struct {
	inputFile string
	dumps     bool
	format    string
	pretty    bool
}

func newConvertCmd(root *rootFlags) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:     "2json",
		Aliases: []string{"convert"},
		Short:   "Load a workbook and convert it to structured text",
		Long: `Load a .xls or .xlsx workbook. With --dumps the result is written next
to the input file (book.xlsx -> book.json); otherwise it is printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.inputFile, "input-file", "i", "", "Path to the input Excel file (env: SHEETCONV_INPUT_FILE)")
	cmd.Flags().BoolVar(&flags.dumps, "dumps", false, "Write the result to a file next to the input file")
	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: json, yaml, toon (env: SHEETCONV_FORMAT)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output (env: SHEETCONV_PRETTY)")
	// Accept --input_file and friends as spellings of the dashed flags.
	cmd.Flags().SetNormalizeFunc(underscoreToDash)
	return cmd
}

func underscoreToDash(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func runConvert(cmd *cobra.Command, root *rootFlags, flags *convertFlags) error {
	// Keep stdout clean for the document when it is printed there.
	logOut := cmd.OutOrStdout()
	if !flags.dumps {
		logOut = cmd.ErrOrStderr()
	}
	log, err := newLogger(logOut, root)
	if err != nil {
		return err
	}

	inputFile := resolveString(flags.inputFile, "SHEETCONV_INPUT_FILE", "")
	if inputFile == "" {
		return fmt.Errorf("an input file is required: pass --input-file or set SHEETCONV_INPUT_FILE")
	}
	exportOpts := sheetconv.DefaultExportOptions()
	exportOpts.Logger = log
	exportOpts.Pretty = resolveBool(flags.pretty, "SHEETCONV_PRETTY")
	exportOpts.Format, err = output.ParseFormat(resolveString(flags.format, "SHEETCONV_FORMAT", string(exportOpts.Format)))
	if err != nil {
		return err
	}

	loadOpts := sheetconv.DefaultOptions()
	loadOpts.Logger = log
	doc, err := sheetconv.Load(inputFile, loadOpts)
	if err != nil {
		// Already logged by the loader.
		return &ExitError{Code: 1}
	}

	if !flags.dumps {
		return output.Write(cmd.OutOrStdout(), doc, exportOpts.Format, exportOpts.Pretty)
	}

	if _, err := sheetconv.Export(doc, exportOpts); err != nil {
		return &ExitError{Code: 1}
	}
	return nil
}
