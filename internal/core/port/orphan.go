package port

import (
	"context"
	"time"
)

// OrphanService reconciles stored objects that have no video record
type OrphanService interface {
	SweepOrphans(ctx context.Context, now time.Time) (int, error)
}
