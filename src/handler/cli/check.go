package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"debt-detective/src/config"
	"debt-detective/src/controller"
)

func (h *Handler) checkCmd() *cobra.Command {
	var (
		failUnder int
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Quick health check",
		Long:  "Runs the fast, exact detectors and prints the health score; exits non-zero below --fail-under",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			h.cfg.Analysis.Depth = config.DepthQuick
			h.cfg.ApplyDepth()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{RootPath: root})
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			fmt.Printf("Health score: %d/100 (%s)\n", report.Summary.HealthScore, report.Summary.Status)
			fmt.Printf("Total issues: %d\n", report.Summary.TotalIssues)
			if report.Stats.FilesSkipped > 0 {
				fmt.Printf("Files skipped: %d\n", report.Stats.FilesSkipped)
			}

			if report.Summary.HealthScore < failUnder {
				return fmt.Errorf("health score %d is below threshold %d", report.Summary.HealthScore, failUnder)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&failUnder, "fail-under", 0, "Exit non-zero if the health score is below this value")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 2*time.Minute, "Check timeout")

	return cmd
}
