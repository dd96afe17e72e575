// Package service runs the podium pipeline: profile the source tables,
// merge and clean them, then compute the views and render their charts
// and reports.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
	"github.com/okian/podium/internal/adapters/render/chart"
	"github.com/okian/podium/internal/adapters/render/geo"
	"github.com/okian/podium/internal/adapters/report"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/profile"
	"github.com/okian/podium/internal/domain/tabular"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/views"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Stage names used in logs and metrics.
const (
	StageProfile = "profile"
	StageClean   = "clean"
	StageCharts  = "charts"
)

// Service runs pipeline stages against one configuration.
type Service struct {
	cfg    *config.Config
	logger logger.Logger
	runID  string

	raw   repository.Store
	clean repository.Store

	reports *report.Writer
	charts  *chart.Renderer

	// console receives the coloured profile reports; nil disables it.
	console io.Writer
}

// New constructs a Service with the default configuration and stores
// rooted at the configured directories.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:     config.New(),
		runID:   uuid.NewString(),
		console: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.With(logger.String("run_id", s.runID))
	if s.raw == nil {
		s.raw = repository.NewCSVStore(s.cfg.RawDir)
	}
	if s.clean == nil {
		s.clean = repository.NewCSVStore(s.cfg.CleanDir)
	}
	s.reports = report.NewWriter(s.cfg.ReportDir)
	s.charts = chart.NewRenderer(s.cfg.ChartDir, chart.WithSize(s.cfg.ChartWidthIn, s.cfg.ChartHeightIn))
	return s
}

// RunID identifies this service's runs in logs.
func (s *Service) RunID() string { return s.runID }

// SetConsole redirects the coloured profile output; nil silences it.
func (s *Service) SetConsole(w io.Writer) { s.console = w }

// Run executes every stage in order and dumps the metrics textfile.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info(ctx, "starting pipeline run")
	start := time.Now()

	if _, err := s.Profile(ctx); err != nil {
		return err
	}
	if err := s.Clean(ctx); err != nil {
		return err
	}
	if _, err := s.Charts(ctx); err != nil {
		return err
	}

	metrics.MarkRunCompleted()
	if err := metrics.WriteTextfile(s.cfg.MetricsPath); err != nil {
		s.logger.Warn(ctx, "failed to write metrics textfile", logger.String("path", s.cfg.MetricsPath), logger.Error(err))
	}
	s.logger.Info(ctx, "pipeline run finished", logger.Duration("elapsed", time.Since(start)))
	return nil
}

// stage times fn and wraps its error with the stage name.
func (s *Service) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	s.logger.Info(ctx, "stage started", logger.String("stage", name))
	err := fn()
	metrics.ObserveStage(name, time.Since(start).Seconds())
	if err != nil {
		metrics.RecordError(name, "stage")
		s.logger.Error(ctx, "stage failed", logger.String("stage", name), logger.Error(err))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrStage, name, err)
	}
	s.logger.Info(ctx, "stage finished", logger.String("stage", name), logger.Duration("elapsed", time.Since(start)))
	return nil
}

// sourceTables lists the raw tables in profiling order.
var sourceTables = []struct {
	file     string
	label    string
	required []string
}{
	{repository.FileAthletes, "athletes", repository.AthleteColumns},
	{repository.FileHosts, "hosts", repository.HostColumns},
	{repository.FileMedals, "medals", repository.MedalColumns},
	{repository.FileResults, "results", repository.ResultColumns},
}

// Profile reports on every source table, printing each report to the
// console and saving it under the report directory.
func (s *Service) Profile(ctx context.Context) ([]*profile.Report, error) {
	var out []*profile.Report
	err := s.stage(ctx, StageProfile, func() error {
		for _, t := range sourceTables {
			df, err := s.raw.Read(ctx, t.file)
			if err != nil {
				return err
			}
			r, err := profile.Build(ctx, t.label, df, s.cfg.PreviewRows)
			if err != nil {
				return err
			}
			metrics.RecordDuplicateRows(t.label, r.Duplicates)
			if s.console != nil {
				if err := r.Render(s.console, false); err != nil {
					return err
				}
			}
			path, err := s.reports.WriteProfile(r)
			if err != nil {
				return err
			}
			s.logger.Info(ctx, "table profiled",
				logger.String("table", t.label),
				logger.Int("rows", r.Rows),
				logger.Int("duplicates", r.Duplicates),
				logger.String("report", path),
			)
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clean merges medals with athletes, cleans the merged, host and result
// tables and writes them to the clean store.
func (s *Service) Clean(ctx context.Context) error {
	return s.stage(ctx, StageClean, func() error {
		tables := make(map[string]dataframe.DataFrame, len(sourceTables))
		for _, t := range sourceTables {
			df, err := s.raw.Read(ctx, t.file)
			if err != nil {
				return err
			}
			if err := tabular.RequireColumns(df, t.label, t.required...); err != nil {
				return err
			}
			tables[t.file] = df
		}

		merged, js, err := tabular.LeftJoin(tables[repository.FileMedals], tables[repository.FileAthletes], repository.ColAthleteURL)
		if err != nil {
			return err
		}
		metrics.RecordJoinUnmatched("medals_athletes", js.Unmatched)
		s.logger.Info(ctx, "medals merged with athletes",
			logger.Int("rows", merged.Nrow()),
			logger.Int("unmatched", js.Unmatched),
			logger.Strings("dropped_columns", js.Dropped),
		)

		outputs := []struct {
			file  string
			label string
			df    dataframe.DataFrame
		}{
			{repository.FileAthleteMedals, "athletes_medals", merged},
			{repository.FileHosts, "hosts", tables[repository.FileHosts]},
			{repository.FileResults, "results", tables[repository.FileResults]},
		}
		for _, o := range outputs {
			if err := ctx.Err(); err != nil {
				return err
			}
			cleaned, cs, err := tabular.Clean(o.df)
			if err != nil {
				return fmt.Errorf("%s: %w", o.label, err)
			}
			metrics.RecordRowsDropped(o.label, cs.RowsDropped)
			if cs.RowsIn > 0 && cleaned.Nrow() == 0 {
				s.logger.Warn(ctx, "cleaning dropped every row", logger.String("table", o.label), logger.Int("rows_in", cs.RowsIn))
			}
			if err := s.clean.Write(ctx, o.file, cleaned); err != nil {
				return err
			}
			s.logger.Info(ctx, "table cleaned",
				logger.String("table", o.label),
				logger.Int("rows_in", cs.RowsIn),
				logger.Int("rows_dropped", cs.RowsDropped),
			)
		}
		return nil
	})
}

// Charts reloads the cleaned medals and the raw hosts, computes every view,
// renders its chart and writes the JSON and workbook reports.
func (s *Service) Charts(ctx context.Context) (*types.Views, error) {
	var out *types.Views
	err := s.stage(ctx, StageCharts, func() error {
		mdf, err := s.clean.Read(ctx, repository.FileAthleteMedals)
		if err != nil {
			return err
		}
		medals, err := repository.DecodeAthleteMedals(mdf)
		if err != nil {
			return err
		}
		hdf, err := s.raw.Read(ctx, repository.FileHosts)
		if err != nil {
			return err
		}
		hosts, err := repository.DecodeHosts(hdf)
		if err != nil {
			return err
		}

		v, err := views.Compute(ctx, medals, hosts, views.Options{
			TopDisciplines:    s.cfg.TopDisciplines,
			TopWomenCountries: s.cfg.TopWomenCountries,
			TopLocalAthletes:  s.cfg.TopLocalAthletes,
			SplineSamples:     s.cfg.SplineSamples,
			LocalJoin:         s.cfg.LocalJoin,
		})
		if err != nil {
			return err
		}
		for _, name := range types.ViewNames {
			metrics.RecordViewComputed(name)
		}

		maps, err := s.mapRenderer(ctx)
		if err != nil {
			return err
		}
		if err := s.render(ctx, v, maps); err != nil {
			return err
		}

		jsonPath, err := s.reports.WriteJSON(v)
		if err != nil {
			return err
		}
		xlsxPath, err := s.reports.WriteWorkbook(v)
		if err != nil {
			return err
		}
		s.logger.Info(ctx, "reports written", logger.String("json", jsonPath), logger.String("workbook", xlsxPath))
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// mapRenderer loads the boundary file. A missing file disables the maps.
func (s *Service) mapRenderer(ctx context.Context) (*geo.MapRenderer, error) {
	path := s.cfg.BoundariesPath
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		s.logger.Warn(ctx, "boundary file not found; skipping choropleths", logger.String("path", path))
		return nil, nil
	}
	regions, err := geo.LoadBoundaries(path, s.cfg.BoundaryNameField)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoundaries, err)
	}
	s.logger.Info(ctx, "boundaries loaded", logger.String("path", path), logger.Int("regions", len(regions)))
	return geo.NewMapRenderer(s.cfg.ChartDir, regions, geo.WithSize(s.cfg.ChartWidthIn, s.cfg.ChartHeightIn)), nil
}
