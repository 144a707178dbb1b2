package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"debt-detective/src/controller"
	"debt-detective/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		depth       string
		outputDir   string
		format      string
		extensions  []string
		exclusions  []string
		maxFileSize int64
		workers     int
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a source tree for technical debt",
		Long:  "Runs all enabled detectors against a directory and generates a report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			h.applyAnalysisFlags(depth, extensions, exclusions, maxFileSize, workers)

			util.Info("Analyzing %s (depth: %s, timeout: %v)", root, h.cfg.Analysis.Depth, timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			// Run analysis
			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{RootPath: root})
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			// Output results
			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "console"
				}

				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					return fmt.Errorf("rendering report: %w", err)
				}
				fmt.Println(output)
			}

			// Print summary to stderr
			fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
			fmt.Fprintf(os.Stderr, "  Total issues: %d\n", report.Summary.TotalIssues)
			fmt.Fprintf(os.Stderr, "  Health score: %d/100 (%s)\n", report.Summary.HealthScore, report.Summary.Status)
			if report.Stats.FilesSkipped > 0 {
				fmt.Fprintf(os.Stderr, "  Files skipped: %d\n", report.Stats.FilesSkipped)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&depth, "depth", "d", "", "Depth level (quick, standard, deep)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, console, html)")
	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", nil, "File extensions to analyze (overrides config)")
	cmd.Flags().StringSliceVarP(&exclusions, "exclude", "x", nil, "Additional exclusion patterns")
	cmd.Flags().Int64Var(&maxFileSize, "max-file-size", 0, "Max file size in bytes (overrides config)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel file workers (overrides config)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}

// applyAnalysisFlags overlays command-line overrides onto the loaded
// config, then re-applies the depth profile so its thresholds win.
func (h *Handler) applyAnalysisFlags(depth string, extensions, exclusions []string, maxFileSize int64, workers int) {
	if depth != "" {
		h.cfg.Analysis.Depth = depth
	}
	if len(extensions) > 0 {
		h.cfg.Analysis.Extensions = extensions
	}
	if len(exclusions) > 0 {
		h.cfg.Analysis.Exclusions = append(h.cfg.Analysis.Exclusions, exclusions...)
	}
	if maxFileSize != 0 {
		h.cfg.Analysis.MaxFileSizeBytes = maxFileSize
	}
	if workers != 0 {
		h.cfg.Analysis.Workers = workers
	}
	h.cfg.ApplyDepth()
}
