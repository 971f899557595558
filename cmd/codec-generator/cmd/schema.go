package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codec-generator/internal/diagnostic"
	"codec-generator/internal/gen"
	"codec-generator/internal/plan"
	"codec-generator/internal/schemafile"
)

type schemaOptions struct {
	file      string
	out       string
	pkgName   string
	genFile   string
	config    string
	normalize bool
}

var schemaOpts schemaOptions

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate record types and codecs from a YAML schema file",
	Long: `Generate record types and codecs from a YAML schema file.

The struct definitions are emitted together with their conversions.

Example:
  codec-generator schema --file records.yaml --out ./proto`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchema(schemaOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOpts.file, "file", "f", "", "YAML schema file")
	schemaCmd.Flags().StringVarP(&schemaOpts.out, "out", "o", "", "Output directory (default: the schema file directory)")
	schemaCmd.Flags().StringVar(&schemaOpts.pkgName, "package", "", "Package name (default: the schema's package)")
	schemaCmd.Flags().StringVar(&schemaOpts.genFile, "gen-file", "", "Output file name (default: <package>_codec.go)")
	schemaCmd.Flags().StringVar(&schemaOpts.config, "config", "", "YAML generator configuration")
	schemaCmd.Flags().BoolVar(&schemaOpts.normalize, "normalize", false, "Rewrite the schema file in canonical form (comments are not kept)")
	_ = schemaCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(opts schemaOptions, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(genOptions{config: opts.config, file: opts.genFile})
	if err != nil {
		return err
	}

	f, err := schemafile.LoadFile(opts.file)
	if err != nil {
		return err
	}

	if opts.pkgName != "" {
		f.Package = opts.pkgName
	}

	if f.Package == "" {
		return errors.New("no package name: set package in the schema file or pass --package")
	}

	diags := schemafile.Validate(f)

	var plans []*plan.RecordPlan
	if diags.IsValid() {
		var d diagnostic.Diagnostics
		plans, d = plan.PlanRecords(f.Schema())
		diags.Merge(d)
	}

	printDiagnostics(stderr, diags)
	if diags.HasErrors() {
		return errDiagnostics
	}

	if opts.normalize {
		f.Normalize()
		if err := schemafile.WriteFile(f, opts.file); err != nil {
			return err
		}
		log.Info("normalized schema", zap.String("schema", opts.file))
	}

	cfg.PackageName = f.Package
	cfg.OutputDir = opts.out
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Dir(opts.file)
	}

	files, err := gen.NewGenerator(cfg).Generate(plans)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
		return err
	}

	for _, file := range files {
		path := filepath.Join(cfg.OutputDir, file.Filename)
		log.Info("wrote file", zap.String("path", path), zap.String("schema", opts.file))
		fmt.Fprintf(stdout, "%s: %d records\n", path, len(plans))
	}

	return nil
}
