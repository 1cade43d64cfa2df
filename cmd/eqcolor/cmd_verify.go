package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eqcolor/report"
	"github.com/katalvlaran/eqcolor/verify"
)

type verifyFlags struct {
	config       string
	graph        string
	coloring     string
	coloringFile string
	k            int
	truncate     bool
	preview      int
	format       string
}

func newVerifyCmd(logger func() (*slog.Logger, error)) *cobra.Command {
	var f verifyFlags

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a coloring against a DIMACS graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger()
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(f.format)
			if err != nil {
				return err
			}
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			v, err := verify.NewVerifier(verify.WithLogger(log))
			if err != nil {
				return err
			}
			r, err := v.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := report.Encode(cmd.OutOrStdout(), r, format, report.WithPreview(cfg.PreviewLimit)); err != nil {
				return err
			}

			return outcomeExit(r.Outcome)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML run configuration; flags override its values")
	fl.StringVar(&f.graph, "graph", "", "DIMACS graph file")
	fl.StringVar(&f.coloring, "coloring", "", "coloring as whitespace-separated integers")
	fl.StringVar(&f.coloringFile, "coloring-file", "", "file holding the coloring")
	fl.IntVarP(&f.k, "expected-k", "k", 0, "expected number of colors (0: no expectation)")
	fl.BoolVar(&f.truncate, "truncate", false, "drop colors beyond the vertex count instead of failing")
	fl.IntVar(&f.preview, "preview", report.DefaultPreview, "violations listed in the text report")
	fl.StringVar(&f.format, "format", string(report.FormatText), "output format: text, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("coloring", "coloring-file")

	return cmd
}

// resolve layers explicitly set flags over the optional config file.
func (f *verifyFlags) resolve(cmd *cobra.Command) (verify.Config, error) {
	cfg := verify.Config{PreviewLimit: report.DefaultPreview}
	if f.config != "" {
		file, err := os.Open(f.config)
		if err != nil {
			return cfg, fmt.Errorf("--config: %w", err)
		}
		defer file.Close()
		if cfg, err = verify.DecodeConfig(file); err != nil {
			return cfg, fmt.Errorf("--config %s: %w", f.config, err)
		}
	}

	set := cmd.Flags().Changed
	if set("graph") {
		cfg.GraphPath = f.graph
	}
	if set("coloring") {
		cfg.ColoringText, cfg.ColoringPath = f.coloring, ""
	}
	if set("coloring-file") {
		cfg.ColoringText, cfg.ColoringPath = "", f.coloringFile
	}
	if set("expected-k") {
		cfg.ExpectedK = f.k
	}
	if set("truncate") {
		cfg.TruncateExtra = f.truncate
	}
	if set("preview") || cfg.PreviewLimit == 0 {
		cfg.PreviewLimit = f.preview
	}

	return cfg, nil
}

func outcomeExit(o report.Outcome) error {
	switch o {
	case report.Success:
		return nil
	case report.Failed:
		return exitCode(exitFailed)
	default:
		return exitCode(exitPartial)
	}
}
