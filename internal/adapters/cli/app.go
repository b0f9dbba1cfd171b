package cli

import (
	"github.com/minsukang/ytcoach/internal/adapters/gemini"
	"github.com/minsukang/ytcoach/internal/adapters/youtube"
	"github.com/minsukang/ytcoach/internal/application"
	"github.com/minsukang/ytcoach/internal/config"
)

// App holds all application dependencies
type App struct {
	Config    *config.Config
	Fetcher   *youtube.Fetcher
	Generator *gemini.Generator

	BatchSvc *application.BatchService
	CoachSvc *application.CoachService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	fetcher := youtube.NewFetcher()
	generator := gemini.NewGenerator(cfg.API.BaseURL, cfg.API.Model, cfg.Defaults.ReportLanguage)

	batchSvc := application.NewBatchService(fetcher)
	coachSvc := application.NewCoachService(batchSvc, generator)

	return &App{
		Config:    cfg,
		Fetcher:   fetcher,
		Generator: generator,
		BatchSvc:  batchSvc,
		CoachSvc:  coachSvc,
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
