package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all stored documents and their fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if !purgeYes {
			return fmt.Errorf("refusing to delete all documents without --yes")
		}

		documents, cleanup, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		n, err := documents.DeleteAll(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d documents\n", n)
		return nil
	},
}

func init() {
	purgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "confirm deletion of every stored document")
}
