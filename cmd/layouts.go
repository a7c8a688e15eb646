package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-printer/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List available page layouts and paper sizes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Layouts:")
		for _, lt := range layout.Layouts() {
			fmt.Printf("  %-12s %d photos per page\n", lt, lt.Capacity())
		}
		fmt.Println()
		fmt.Println("Paper sizes:")
		for _, p := range layout.Papers() {
			fmt.Printf("  %-8s %.1f x %.1f mm\n", p.Name, p.WidthMM, p.HeightMM)
		}
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
