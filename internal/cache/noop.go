package cache

import (
	"context"

	"github.com/zhulik/starmatch/pkg/starmatch"
)

// Noop never stores anything, used when no redis address is configured.
type Noop struct{}

func (Noop) Get(_ context.Context, _ starmatch.Algorithm, _, _ string) (int, bool, error) {
	return 0, false, nil
}

func (Noop) Set(_ context.Context, _ starmatch.Algorithm, _, _ string, _ int) error {
	return nil
}
