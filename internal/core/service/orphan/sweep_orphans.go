package orphan

import (
	"context"
	"time"
)

// SweepOrphans resolves every listed object older than the grace period that has no video record
func (o *Reconciler) SweepOrphans(ctx context.Context, now time.Time) (int, error) {
	objects, err := o.store.ListObjects(ctx, now.Add(-o.cfg.GracePeriod))
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, object := range objects {
		orphan, err := o.isOrphan(ctx, object.Key)
		if err != nil {
			return resolved, err
		}
		if !orphan {
			continue
		}

		if err := o.resolve(ctx, "sweep", object.Key, now.Sub(object.LastModified)); err != nil {
			o.logger.Error("failed to resolve orphaned object", "key", object.Key, "error", err)
			continue
		}
		resolved++
	}
	o.logger.Info("orphan sweep completed", "listed", len(objects), "resolved", resolved)
	return resolved, nil
}
