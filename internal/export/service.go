package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/docuflow/idextract/internal/repository"
)

// Service produces XLSX bytes from the document store for review workflows.
type Service struct {
	repo   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(repo repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportDocumentsXLSX returns a workbook listing every document, one row per
// field, with corrected values where present.
func (s *Service) ExportDocumentsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	docs, err := s.repo.List(ctx, repository.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document ID",
		"Uploaded File",
		"Document Type",
		"Classification Confidence",
		"Field",
		"Value",
		"Corrected",
		"Field Confidence",
		"Needs Review",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		for _, fld := range d.Fields {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, d.ID.String())
			write(2, d.OriginalFilename)
			write(3, d.DocumentType.DisplayName())
			write(4, fmt.Sprintf("%.2f", d.Confidence))
			write(5, fld.FieldName)
			write(6, fld.EffectiveValue())
			write(7, fld.Corrected)
			write(8, fmt.Sprintf("%.2f", fld.Confidence))
			write(9, fld.NeedsReview())
			write(10, d.CreatedAt.UTC().Format("2006-01-02 15:04:05"))

			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // uuid
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "E", "F", 24)
	_ = f.SetColWidth(sheet, "J", "J", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"documents", len(docs),
		"rows", row-2,
		"bytes", buf.Len(),
		"took", time.Since(start),
	)
	return buf.Bytes(), nil
}
