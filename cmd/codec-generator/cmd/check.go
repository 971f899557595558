package cmd

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	genOptions
	dump bool
}

var checkOpts checkOptions

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report record layouts and diagnostics without writing files",
	Long: `Report record layouts and diagnostics without writing files.

Example:
  codec-generator check --pkg ./examples/invalid
  codec-generator check --pkg ./examples/wire --type Data --dump`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(checkOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkOpts.pkgs, "pkg", []string{"."}, "Go package patterns to load")
	checkCmd.Flags().StringSliceVar(&checkOpts.types, "type", nil, "Record type names (default: types marked with //codec:generate)")
	checkCmd.Flags().BoolVar(&checkOpts.dump, "dump", false, "Dump the full record plans")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(opts checkOptions, stdout, stderr io.Writer) error {
	pkgs, diags, err := extract(opts.genOptions)
	printDiagnostics(stderr, &diags)
	if err != nil {
		return err
	}

	for _, pp := range pkgs {
		for _, p := range pp.plans {
			fmt.Fprintf(stdout, "%s: %d bytes, targets %s\n", p.Record.ID(), p.Size, p.Targets())
			for _, f := range p.Fields {
				fmt.Fprintf(stdout, "\t%s %s [%d, %d)\n",
					f.Name, f.Field.TypeString(), f.Offset, f.Offset+f.Strategy.ByteWidth())
			}

			if opts.dump {
				spew.Fdump(stdout, p)
			}
		}
	}

	if diags.HasErrors() {
		return errDiagnostics
	}

	return nil
}
