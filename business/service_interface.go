package business

import (
	"github.com/ponomarenko777/sales-bonus/models"
)

type AnalyzerService interface {
	// Analyze joins sellers, products and purchase records into one
	// report row per seller, ordered by profit descending. It returns
	// either the complete report or an error, never partial output.
	Analyze(data *models.Dataset, options *Options) ([]models.ReportRow, error)
}
