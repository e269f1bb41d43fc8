package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docuflow/idextract/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored documents to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		documents, cleanup, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		xlsx, err := export.NewService(documents, logger).ExportDocumentsXLSX(ctx)
		if err != nil {
			return err
		}

		if err := os.WriteFile(exportOut, xlsx, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d bytes)\n", exportOut, len(xlsx))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "documents.xlsx", "output XLSX file path")
}
