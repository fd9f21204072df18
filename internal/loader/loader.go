package loader

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/ponomarenko777/sales-bonus/internal/logger"
	"github.com/ponomarenko777/sales-bonus/models"
)

var log = logger.GetLogger()

// LoadDataset reads a JSON snapshot of sellers, products and purchase
// records from path. Shape validation is left to the analyzer.
func LoadDataset(path string) (*models.Dataset, error) {
	log.Debugln("Reading dataset from file:", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset %s", path)
	}

	dataset := &models.Dataset{}
	if err := json.Unmarshal(raw, dataset); err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset %s", path)
	}

	return dataset, nil
}
