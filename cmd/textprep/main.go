package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"textprep/internal/cleaner"
	"textprep/internal/config"
	"textprep/internal/domain"
	"textprep/internal/fetch"
	"textprep/internal/server"
	"textprep/internal/service"
	"textprep/internal/summarizer"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textprep/config.yaml if not provided)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	// Assemble components
	fetcher := fetch.NewClient(time.Duration(cfg.Fetcher.TimeoutSecs) * time.Second)
	archive := cleaner.New(cfg.Cleaner.ExtraMarkers...)

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "lead", "":
		sum = summarizer.NewLeadSummarizer()
	case "frequency":
		sum = summarizer.NewFrequencySummarizer()
	default:
		logger.Fatal("unknown summarizer", "type", cfg.Summarizer.Type)
	}

	svc := service.NewPreprocessService(fetcher, archive, sum, cfg.Summarizer.Sentences)
	srv := server.New(svc, logger)
	if err := srv.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
