package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docuflow/idextract/internal/repository"
)

var (
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		documents, cleanup, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		docs, err := documents.List(ctx, repository.ListOptions{Limit: listLimit, Offset: listOffset})
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTYPE\tCONFIDENCE\tREVIEW\tFILE\tCREATED")
		for _, doc := range docs {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%t\t%s\t%s\n",
				doc.ID,
				doc.DocumentType,
				doc.Confidence,
				doc.RequiresReview(),
				doc.OriginalFilename,
				doc.CreatedAt.Format("2006-01-02 15:04:05"),
			)
		}
		return tw.Flush()
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum number of documents to list")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of documents to skip")
}
