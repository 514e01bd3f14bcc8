package ports

import (
	"context"

	"goabtest/domain/abtest"
	"goabtest/domain/dataset"
)

// GroupSource provides the raw table of one bidding group
type GroupSource interface {
	LoadGroup(ctx context.Context, group abtest.Group) (*dataset.Frame, error)
	// Describe names the origin of a group's rows for reports and logs
	Describe(group abtest.Group) string
}
