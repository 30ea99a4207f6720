package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"bini/internal/domain"
)

func TestWritePaymentReport(t *testing.T) {
	report := &domain.PaymentReport{
		Data: []domain.PaymentMethodGroup{
			{Method: "mtn", Revenue: 400, Transactions: 2, Percentage: 80, AverageTransaction: 200},
			{Method: "orange", Revenue: 100, Transactions: 1, Percentage: 20, AverageTransaction: 100},
		},
		Summary: domain.PaymentSummary{
			TotalRevenue:            500,
			TotalTransactions:       3,
			MethodsCount:            2,
			AverageTransactionValue: 167,
		},
	}

	var buf bytes.Buffer
	err := WritePaymentReport(&buf, report)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue(sheetName, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Payment Method", header)

	method, err := f.GetCellValue(sheetName, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "mtn", method)

	revenue, err := f.GetCellValue(sheetName, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "400", revenue)

	// Totals row sits one blank row below the data.
	label, err := f.GetCellValue(sheetName, "A5")
	assert.NoError(t, err)
	assert.Equal(t, "Total", label)

	total, err := f.GetCellValue(sheetName, "B5")
	assert.NoError(t, err)
	assert.Equal(t, "500", total)
}

func TestWritePaymentReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WritePaymentReport(&buf, &domain.PaymentReport{})
	assert.NoError(t, err)
	assert.NotEmpty(t, buf.Bytes())
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "payment_breakdown", SanitizeFilename("payment breakdown"))
	assert.Equal(t, "Q1_2026", SanitizeFilename("Q1 / 2026!"))
	assert.Equal(t, "report", SanitizeFilename("__report__"))
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("payment breakdown")
	assert.Contains(t, name, "payment_breakdown_")
	assert.Contains(t, name, ".xlsx")
}
