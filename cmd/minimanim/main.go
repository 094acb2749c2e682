package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Set by the release build.
var version = "dev"

var (
	debugMode bool
	logLevel  string
	logger    = log.NewWithOptions(os.Stderr, log.Options{Prefix: "minimanim", ReportTimestamp: true})
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minimanim",
		Short: "Render animated scenes to video",
		Long: `minimanim renders scenes of simple shapes, images and QR codes to video
or PNG frame sequences. Scenes come from YAML files or the built-in demos.`,
		Example: `  # Render the default demo to output/
  minimanim render

  # Render a built-in scene at 720p
  minimanim render --scene move --resolution 720p

  # Render a scene file as PNG frames
  minimanim render scenes/intro.yaml --export-frames --frames-dir frames

  # Check a scene file
  minimanim validate scenes/intro.yaml`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newRenderCmd(), newScenesCmd(), newValidateCmd(), newEasingsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() error {
	if debugMode {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
		return nil
	}
	level, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}
