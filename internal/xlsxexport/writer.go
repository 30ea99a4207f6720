// Package xlsxexport renders payment reports as Excel workbooks for the
// finance team.
package xlsxexport

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"bini/internal/domain"
)

const sheetName = "Payment Methods"

// columns defines the header row of the breakdown sheet.
var columns = []string{
	"Payment Method",
	"Revenue",
	"Transactions",
	"Share (%)",
	"Average Transaction",
}

// WritePaymentReport renders the breakdown report into an XLSX workbook and
// writes it to w. One row per payment-method group, followed by a totals row.
func WritePaymentReport(w io.Writer, report *domain.PaymentReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("xlsxexport: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("xlsxexport: write header: %w", err)
		}
	}

	for i, group := range report.Data {
		row := i + 2
		values := []interface{}{
			group.Method,
			group.Revenue,
			group.Transactions,
			group.Percentage,
			group.AverageTransaction,
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
	}

	totalsRow := len(report.Data) + 3
	totals := []interface{}{
		"Total",
		report.Summary.TotalRevenue,
		report.Summary.TotalTransactions,
		"",
		report.Summary.AverageTransactionValue,
	}
	if err := setRow(f, totalsRow, totals); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "A", "E", 22); err != nil {
		return fmt.Errorf("xlsxexport: set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("xlsxexport: cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("xlsxexport: write cell: %w", err)
		}
	}
	return nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.xlsx", sanitized, date)
}
