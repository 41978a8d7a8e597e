package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"textprep/internal/cleaner"
	"textprep/internal/config"
	"textprep/internal/domain"
	"textprep/internal/fetch"
	"textprep/internal/service"
	"textprep/internal/summarizer"
	"textprep/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textprep/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
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
		log.Fatalf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	svc := service.NewPreprocessService(fetcher, archive, sum, cfg.Summarizer.Sentences)

	m := tui.New(svc)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
