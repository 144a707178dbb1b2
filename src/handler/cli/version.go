package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("debt-detective %s\n", h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) detectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detectors",
		Short: "List available detectors",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available detectors:")
			fmt.Println("  - nesting      : Deeply nested blocks via indentation or brace depth")
			fmt.Println("  - line_length  : Overlong lines")
			fmt.Println("  - debt_comment : TODO/FIXME/HACK/XXX markers")
			fmt.Println("  - parameters   : Functions with too many parameters")
			fmt.Println("  - file_size    : Files with too many lines")
			fmt.Println("")
			fmt.Println("Quick depth runs only the exact detectors (line_length, debt_comment, file_size).")
		},
	}
}
