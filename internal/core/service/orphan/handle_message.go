package orphan

import (
	"challenge-clips/internal/core/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// HandleMessage checks the object of a bucket creation event. While the grace period runs
// a missing record is reported as ErrRecordPending so the broker redelivers the event.
func (o *Reconciler) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.BucketEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal bucket event: %v", err)
	}
	if len(event.Records) == 0 {
		return fmt.Errorf("no records in bucket event")
	}

	record := event.Records[0]
	if !strings.HasPrefix(record.EventName, "s3:ObjectCreated:") {
		o.logger.Debug("ignoring bucket event", "event", record.EventName)
		return nil
	}

	key, err := url.QueryUnescape(record.S3.Object.Key)
	if err != nil {
		return err
	}
	if _, err := domain.ParseStorageKey(key); err != nil {
		o.logger.Info("ignoring object outside the video key layout", "key", key)
		return nil
	}

	createdAt, err := time.Parse(time.RFC3339, record.EventTime)
	if err != nil {
		createdAt = o.now()
	}

	o.logger.Info("handling bucket event", "event", record.EventName, "key", key)

	orphan, err := o.isOrphan(ctx, key)
	if err != nil {
		return err
	}
	if !orphan {
		return nil
	}

	age := o.now().Sub(createdAt)
	if age < o.cfg.GracePeriod {
		return fmt.Errorf("%w: %s", ErrRecordPending, key)
	}
	return o.resolve(ctx, "event", key, age)
}
