package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docuflow/idextract/internal/common"
)

var (
	cfg     *common.Config
	logger  *slog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "idextract",
	Short: "Identity document extraction toolkit",
	Long:  "Classifies passports, driver's licenses and EAD cards, extracts their fields via a vision model, and stores the results for review.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		cfg = common.LoadConfig()
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress")
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(purgeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
