package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/ponomarenko777/sales-bonus/models"
)

const REPORT_CSV_HEADER = "seller_id,name,revenue,profit,sales_count,bonus\n"

// ReportRowToCsv renders one report row. Top products are kept out of
// the CSV, they go to the JSON artifact.
func ReportRowToCsv(row models.ReportRow) string {
	return fmt.Sprintf("%s,%s,%.2f,%.2f,%d,%.2f\n",
		row.SellerID, row.Name, row.Revenue, row.Profit, row.SalesCount, row.Bonus)
}

func WriteCsv(path string, rows []models.ReportRow) error {
	var sb strings.Builder
	sb.WriteString(REPORT_CSV_HEADER)
	for _, row := range rows {
		sb.WriteString(ReportRowToCsv(row))
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return errors.Wrapf(err, "failed to write csv report %s", path)
	}
	return nil
}

func WriteJson(path string, rows []models.ReportRow) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal report")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write json report %s", path)
	}
	return nil
}
