package app

import (
	"context"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// SeedSource provides the fixed list of posts the feed is built from.
type SeedSource interface {
	Posts(ctx context.Context) ([]domain.Post, error)
}
