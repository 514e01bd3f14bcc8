package container

import (
	"context"
	"fmt"
	"io"

	"goabtest/adapters/excel"
	"goabtest/app"
	"goabtest/domain/abtest"
	"goabtest/domain/core"
	"goabtest/internal"
	"goabtest/internal/config"
	"goabtest/internal/report"
	"goabtest/ports"
)

// Container holds the wired components of one analysis run
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	Source   ports.GroupSource
	Service  *app.ABTestService
	Renderer ports.ReportRenderer
}

// New wires the workbook source, the analysis service and the renderer
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	renderer, err := report.NewRenderer(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	source := excel.NewGroupSource(excel.ExcelConfig{
		Control: excel.SheetRef{FilePath: cfg.Data.ExcelFile, Sheet: cfg.Data.ControlSheet},
		Test:    excel.SheetRef{FilePath: cfg.Data.ExcelFile, Sheet: cfg.Data.TestSheet},
	})

	settings := app.Settings{
		Metric:      cfg.Analysis.Metric,
		Alpha:       cfg.Analysis.Alpha,
		HeadRows:    cfg.Analysis.HeadRows,
		CapOutliers: cfg.Analysis.CapOutliers,
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Source:   source,
		Service:  app.NewABTestService(source, settings, logger),
		Renderer: renderer,
	}, nil
}

// Analyze runs the full comparison and renders it to w
func (c *Container) Analyze(ctx context.Context, w io.Writer) error {
	result, err := c.Service.Run(ctx)
	if err != nil {
		return err
	}
	return c.Renderer.Render(w, result)
}

// Describe renders only the dataset summaries of both groups
func (c *Container) Describe(ctx context.Context, w io.Writer) error {
	summaries, err := c.Service.Profile(ctx)
	if err != nil {
		return err
	}
	return c.Renderer.Render(w, &abtest.Report{
		RunID:       core.NewRunID(),
		GeneratedAt: core.Now(),
		Source:    c.Source.Describe(abtest.GroupControl) + ", " + c.Source.Describe(abtest.GroupTest),
		Metric:    c.Config.Analysis.Metric,
		Alpha:     c.Config.Analysis.Alpha,
		Summaries: summaries,
	})
}
