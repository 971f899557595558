package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/gen"
	"codec-generator/internal/plan"
)

type genOptions struct {
	pkgs    []string
	types   []string
	out     string
	file    string
	targets []string
	config  string
	// dir is the working directory for package patterns.
	dir string
}

// packagePlans are the plans extracted from one loaded package.
type packagePlans struct {
	info  analyze.PackageInfo
	plans []*plan.RecordPlan
}

var genOpts genOptions

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate codecs for records in Go packages",
	Long: `Generate codecs for records in Go packages.

Without --type, every struct whose doc comment carries //codec:generate is
used. One file is written per package, next to the package sources unless
--out is given.

Example:
  codec-generator gen --pkg ./examples/wire
  codec-generator gen --pkg ./proto --type Header,Trailer --targets decode,size`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGen(genOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	genCmd.Flags().StringSliceVar(&genOpts.pkgs, "pkg", []string{"."}, "Go package patterns to load")
	genCmd.Flags().StringSliceVar(&genOpts.types, "type", nil, "Record type names (default: types marked with //codec:generate)")
	genCmd.Flags().StringVarP(&genOpts.out, "out", "o", "", "Output directory (default: the package directory)")
	genCmd.Flags().StringVar(&genOpts.file, "file", "", "Output file name (default: <package>_codec.go)")
	genCmd.Flags().StringSliceVar(&genOpts.targets, "targets", nil, "Conversions to generate: decode, encode, size, unchecked")
	genCmd.Flags().StringVar(&genOpts.config, "config", "", "YAML generator configuration")
	rootCmd.AddCommand(genCmd)
}

// loadConfig returns the generator configuration with flags applied on top.
func loadConfig(opts genOptions) (gen.GeneratorConfig, error) {
	cfg := gen.DefaultGeneratorConfig()

	if opts.config != "" {
		var err error
		if cfg, err = gen.LoadConfig(opts.config); err != nil {
			return cfg, err
		}
	}

	if opts.file != "" {
		cfg.FileName = opts.file
	}

	if len(opts.targets) > 0 {
		cfg.Targets = opts.targets
	}

	return cfg, nil
}

// extract loads the packages and plans their records. Diagnostics of every
// package are collected before deciding whether to continue.
func extract(opts genOptions) ([]packagePlans, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = opts.dir

	infos, err := analyzer.LoadPackages(opts.pkgs...)
	if err != nil {
		return nil, diags, err
	}

	if len(opts.types) > 0 && len(infos) != 1 {
		return nil, diags, fmt.Errorf("--type needs exactly one package, %d matched", len(infos))
	}

	result := make([]packagePlans, 0, len(infos))
	for _, info := range infos {
		records, d, err := analyzer.Records(info.Path, opts.types...)
		diags.Merge(d)

		if err != nil {
			return nil, diags, err
		}

		plans, d := plan.PlanRecords(records)
		diags.Merge(d)

		result = append(result, packagePlans{info: info, plans: plans})
	}

	return result, diags, nil
}

func runGen(opts genOptions, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	pkgs, diags, err := extract(opts)
	printDiagnostics(stderr, &diags)
	if err != nil {
		return err
	}

	if diags.HasErrors() {
		return errDiagnostics
	}

	for _, pp := range pkgs {
		if len(pp.plans) == 0 {
			continue
		}

		pkgCfg := cfg
		pkgCfg.PackageName = pp.info.Name
		pkgCfg.OutputDir = opts.out
		if pkgCfg.OutputDir == "" {
			pkgCfg.OutputDir = pp.info.Dir
		}

		files, err := gen.NewGenerator(pkgCfg).Generate(pp.plans)
		if err != nil {
			return fmt.Errorf("package %s: %w", pp.info.Path, err)
		}

		if err := gen.WriteFiles(files, pkgCfg.OutputDir); err != nil {
			return err
		}

		for _, f := range files {
			path := filepath.Join(pkgCfg.OutputDir, f.Filename)
			log.Info("wrote file", zap.String("path", path), zap.Int("records", len(pp.plans)))
			fmt.Fprintf(stdout, "%s: %d records\n", path, len(pp.plans))
		}
	}

	return nil
}
