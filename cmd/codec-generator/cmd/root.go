package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/gen"
)

// errDiagnostics is returned when generation stopped on reported diagnostics.
// The diagnostics themselves have already been printed.
var errDiagnostics = errors.New("generation failed, see diagnostics above")

var log = zap.NewNop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codec-generator",
	Short: "Generate fixed-layout binary codecs for Go structs",
	Long: `codec-generator emits TryDecode, TryEncode, FixedSize, DecodeUnchecked and
EncodeUnchecked methods for records made of fixed-width scalars and
fixed-length arrays of them.

Records come from Go packages (types marked with //codec:generate, or named
with --type) or from a YAML schema file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return nil
		}

		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}

		log = l
		analyze.SetLogger(l)
		gen.SetLogger(l)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = log.Sync()

	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable development logging")
}

// printDiagnostics writes every diagnostic, errors first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		if d.Severity == diagnostic.DiagnosticInfo {
			log.Debug(d.String())
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
