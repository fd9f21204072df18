package render_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponomarenko777/sales-bonus/internal/render"
	"github.com/ponomarenko777/sales-bonus/models"
)

var reportMock = []models.ReportRow{
	{
		SellerID:   "seller_1",
		Name:       "Ivan Petrov",
		Revenue:    180,
		Profit:     120,
		SalesCount: 1,
		TopProducts: []models.ProductQuantity{
			{SKU: "S1", Quantity: 2},
		},
		Bonus: 18,
	},
	{
		SellerID:   "seller_2",
		Name:       "Anna Sokolova",
		Revenue:    150,
		Profit:     39,
		SalesCount: 1,
		TopProducts: []models.ProductQuantity{
			{SKU: "S2", Quantity: 2},
		},
		Bonus: 0,
	},
}

// TestReportRowToCsv formats money with two decimals.
func TestReportRowToCsv(t *testing.T) {
	line := render.ReportRowToCsv(reportMock[0])
	assert.Equal(t, "seller_1,Ivan Petrov,180.00,120.00,1,18.00\n", line)
}

// TestWriteCsv writes a header plus one line per row.
func TestWriteCsv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, render.WriteCsv(path, reportMock))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := render.REPORT_CSV_HEADER +
		"seller_1,Ivan Petrov,180.00,120.00,1,18.00\n" +
		"seller_2,Anna Sokolova,150.00,39.00,1,0.00\n"
	assert.Equal(t, expected, string(content))
}

// TestWriteJson round-trips the report through the JSON artifact.
func TestWriteJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, render.WriteJson(path, reportMock))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []models.ReportRow
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, reportMock, decoded)
}
