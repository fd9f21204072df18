package main

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ponomarenko777/sales-bonus/business"
	"github.com/ponomarenko777/sales-bonus/config"
	"github.com/ponomarenko777/sales-bonus/internal/loader"
	"github.com/ponomarenko777/sales-bonus/internal/logger"
	"github.com/ponomarenko777/sales-bonus/internal/render"
)

func main() {

	godotenv.Load()

	var configPath string
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	conf, err := config.InitConfig(configPath)
	if err != nil {
		logger.GetLogger().Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(conf.LogLevel)
	log := logger.GetLogger()
	defer logger.Sync()

	log.Infof(conf.String())

	runID := uuid.NewString()

	dataset, err := loader.LoadDataset(conf.DataPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	analyzer := business.NewAnalyzerServiceWithLimit(conf.TopProducts)
	report, err := analyzer.Analyze(dataset, &business.Options{
		CalculateRevenue: business.CalculateSimpleRevenue,
		CalculateBonus:   business.CalculateBonusByProfit,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	csvPath := filepath.Join(conf.OutputDir, "report_"+runID+".csv")
	if err := render.WriteCsv(csvPath, report); err != nil {
		log.Fatalf("Failed to write csv report: %v", err)
	}

	jsonPath := filepath.Join(conf.OutputDir, "report_"+runID+".json")
	if err := render.WriteJson(jsonPath, report); err != nil {
		log.Fatalf("Failed to write json report: %v", err)
	}

	log.Infof("Report ready: %d sellers | run %s", len(report), runID)
}
