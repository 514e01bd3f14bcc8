package excel

import (
	"context"
	"fmt"

	"goabtest/domain/abtest"
	"goabtest/domain/dataset"
)

// GroupSource loads each bidding group's rows from its configured sheet
type GroupSource struct {
	config ExcelConfig
}

// NewGroupSource creates a group source over the configured sheets
func NewGroupSource(config ExcelConfig) *GroupSource {
	return &GroupSource{config: config}
}

// LoadGroup reads and converts the sheet of one group
func (s *GroupSource) LoadGroup(ctx context.Context, group abtest.Group) (*dataset.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ref, ok := s.config.Ref(group)
	if !ok {
		return nil, fmt.Errorf("unknown group %q", group)
	}

	data, err := NewDataReader(ref.FilePath).ReadSheet(ref.Sheet)
	if err != nil {
		return nil, fmt.Errorf("load %s group: %w", group, err)
	}
	return data.ToFrame()
}

// Describe names where a group's rows come from
func (s *GroupSource) Describe(group abtest.Group) string {
	ref, ok := s.config.Ref(group)
	if !ok {
		return string(group)
	}
	return fmt.Sprintf("%s[%s]", ref.FilePath, ref.Sheet)
}
