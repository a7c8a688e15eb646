package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-printer/internal/config"
	"github.com/kozaktomas/photo-printer/internal/logger"
)

var (
	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "photo-printer",
	Short: "A CLI tool for composing photos into printable PDF pages",
	Long: `Photo Printer arranges photos from a directory into printable pages
with instant-camera style margins and writes them as a single PDF.
Pages hold two, three or four photos in fixed grid layouts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit structured JSON logs instead of console output")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()

	// Flags override the environment-derived logging config.
	cfg := config.Load()
	level := cfg.Log.Level
	pretty := cfg.Log.Pretty
	if rootCmd.PersistentFlags().Changed("log-level") {
		level = logLevel
	}
	if rootCmd.PersistentFlags().Changed("log-json") {
		pretty = !logJSON
	}
	logger.Init(level, pretty)
}
