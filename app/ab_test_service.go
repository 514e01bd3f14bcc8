package app

import (
	"context"
	"fmt"
	"time"

	"goabtest/domain/abtest"
	"goabtest/domain/core"
	"goabtest/domain/dataset"
	"goabtest/internal"
	"goabtest/internal/hypothesis"
	"goabtest/internal/profiling"
	"goabtest/ports"
)

// Summary titles of the two groups, as the workbook names its sheets
var groupTitles = map[abtest.Group]string{
	abtest.GroupControl: "Control Group",
	abtest.GroupTest:    "Test Group",
}

// Settings controls one analysis run
type Settings struct {
	Metric      string
	Alpha       float64
	HeadRows    int
	CapOutliers bool
}

// DefaultSettings analyses Purchase at alpha 0.05 without outlier capping
func DefaultSettings() Settings {
	return Settings{
		Metric:   abtest.ColumnPurchase,
		Alpha:    abtest.DefaultAlpha,
		HeadRows: profiling.DefaultHeadRows,
	}
}

// ABTestService runs the bidding comparison end to end over a group source
type ABTestService struct {
	source   ports.GroupSource
	settings Settings
	logger   *internal.Logger
}

// NewABTestService creates the service; a nil logger uses the default logger
func NewABTestService(source ports.GroupSource, settings Settings, logger *internal.Logger) *ABTestService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if settings.Metric == "" {
		settings.Metric = abtest.ColumnPurchase
	}
	if settings.Alpha <= 0 || settings.Alpha >= 1 {
		settings.Alpha = abtest.DefaultAlpha
	}
	return &ABTestService{
		source:   source,
		settings: settings,
		logger:   logger.WithPrefix("ABTest"),
	}
}

// Run loads both groups, profiles them, merges them under a Group label and
// runs the hypothesis sequence on the target metric.
func (s *ABTestService) Run(ctx context.Context) (*abtest.Report, error) {
	startTime := time.Now()
	metric := s.settings.Metric

	report := &abtest.Report{
		RunID:       core.NewRunID(),
		GeneratedAt: core.Now(),
		Source:      s.source.Describe(abtest.GroupControl) + ", " + s.source.Describe(abtest.GroupTest),
		Metric:      metric,
		Alpha:       s.settings.Alpha,
	}
	s.logger.Info("Run %s: comparing %s across %s", report.RunID, metric, report.Source)

	frames, err := s.loadGroups(ctx)
	if err != nil {
		return nil, err
	}

	for _, group := range abtest.Groups {
		report.Summaries = append(report.Summaries,
			profiling.Summarize(groupTitles[group], frames[group], s.settings.HeadRows))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	combined, err := dataset.Concat(
		frames[abtest.GroupControl].WithLabel(abtest.ColumnGroup, string(abtest.GroupControl)),
		frames[abtest.GroupTest].WithLabel(abtest.ColumnGroup, string(abtest.GroupTest)),
	)
	if err != nil {
		return nil, fmt.Errorf("combine groups: %w", err)
	}
	report.Combined = combined.Head(s.settings.HeadRows).Table()

	report.GroupMeans, err = combined.GroupMeans(abtest.ColumnGroup, metric)
	if err != nil {
		return nil, fmt.Errorf("group means: %w", err)
	}
	for _, m := range report.GroupMeans {
		s.logger.Debug("Mean %s for %s: %.4f (n=%d)", metric, m.Group, m.Mean, m.Count)
	}

	samples := make(map[abtest.Group][]float64, len(abtest.Groups))
	for _, group := range abtest.Groups {
		values, err := groupValues(combined, group, metric)
		if err != nil {
			return nil, err
		}
		if s.settings.CapOutliers {
			lower, upper := profiling.OutlierThresholds(values, 0.25, 0.75)
			capped, n := profiling.CapOutliers(values, lower, upper)
			report.Outliers = append(report.Outliers, abtest.OutlierAdjustment{
				Group: group, Lower: lower, Upper: upper, Capped: n,
			})
			s.logger.Debug("Capped %d %s values of %s to [%.4f, %.4f]", n, metric, group, lower, upper)
			values = capped
		}
		samples[group] = values
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Sequence, err = hypothesis.Sequence(samples[abtest.GroupControl], samples[abtest.GroupTest], metric, s.settings.Alpha)
	if err != nil {
		return nil, fmt.Errorf("hypothesis tests on %s: %w", metric, err)
	}

	s.logger.Info("Run %s finished in %s: %s path, %s p-value %.4f",
		report.RunID, time.Since(startTime).Round(time.Millisecond),
		report.Sequence.Path, report.Sequence.Comparison.Kind.Title(), report.Sequence.Comparison.PValue)
	return report, nil
}

// Profile loads both groups and summarises them without running any test
func (s *ABTestService) Profile(ctx context.Context) ([]dataset.Summary, error) {
	frames, err := s.loadGroups(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]dataset.Summary, 0, len(abtest.Groups))
	for _, group := range abtest.Groups {
		summaries = append(summaries, profiling.Summarize(groupTitles[group], frames[group], s.settings.HeadRows))
	}
	return summaries, nil
}

func (s *ABTestService) loadGroups(ctx context.Context) (map[abtest.Group]*dataset.Frame, error) {
	frames := make(map[abtest.Group]*dataset.Frame, len(abtest.Groups))
	for _, group := range abtest.Groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame, err := s.source.LoadGroup(ctx, group)
		if err != nil {
			return nil, err
		}
		if !frame.HasColumn(s.settings.Metric) {
			return nil, fmt.Errorf("%s group: %w", group, core.NewColumnNotFoundError(s.settings.Metric))
		}
		rows, cols := frame.Shape()
		s.logger.Debug("Loaded %s group from %s: %d rows x %d cols", group, s.source.Describe(group), rows, cols)
		frames[group] = frame
	}
	return frames, nil
}

func groupValues(combined *dataset.Frame, group abtest.Group, metric string) ([]float64, error) {
	rows, err := combined.Filter(abtest.ColumnGroup, string(group))
	if err != nil {
		return nil, err
	}
	col, err := rows.Column(metric)
	if err != nil {
		return nil, err
	}
	if col.Kind != dataset.KindNumeric {
		return nil, fmt.Errorf("%w: metric %q is not numeric", core.ErrKindMismatch, metric)
	}
	return col.Values(), nil
}
