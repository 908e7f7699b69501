package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/intakeai/intakeai_backend/cmd/http"
	systemcmd "github.com/intakeai/intakeai_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "intakeai",
	Short: "IntakeAI patient intake backend for medical practices.",
	Long: `IntakeAI lets doctors send patients a single-use intake link, collects the
completed questionnaire, and produces an AI-generated clinical summary with
red flag detection.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
