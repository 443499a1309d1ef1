package upload

import (
	"bytes"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/metrics"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

func (s *uploadService) Upload(ctx context.Context, asset domain.MediaAsset, identity *domain.Identity, challenge domain.Challenge) (*domain.VideoRecord, error) {
	if identity == nil || identity.UserID == "" {
		metrics.RecordUpload("unauthenticated", 0)
		return nil, fmt.Errorf("%w: user not authenticated", domain.ErrUnauthenticated)
	}

	key := domain.NewStorageKey(identity.UserID, s.now(), asset.FileName)
	s.logger.Info("starting video upload", "owner", identity.UserID, "uri", asset.URI, "key", key)

	payload, err := s.readPayload(ctx, asset)
	if err != nil {
		s.logger.Error("could not read video payload", "key", key, "error", err)
		classified := readFailure(err)
		metrics.RecordUpload(outcome(classified), 0)
		return nil, classified
	}
	s.logger.Info("video payload ready", "key", key, "bytes", payload.Size(), "content_type", payload.ContentType)

	if err := s.store.Put(ctx, key, bytes.NewReader(payload.Data), payload.Size(), payload.ContentType); err != nil {
		s.logger.Error("storage upload failed", "key", key, "error", err)
		classified := classify(err, key, asset.FileName, asset.URI)
		metrics.RecordUpload(outcome(classified), 0)
		return nil, classified
	}

	publicURL, err := s.store.PublicURL(ctx, key)
	if err != nil {
		s.logger.Warn("object written but public url unavailable, object left in storage", "key", key, "error", err)
		metrics.RecordOrphan("upload", "left")
		metrics.RecordUpload("failure", 0)
		return nil, classify(err, key, asset.FileName, asset.URI)
	}

	record, err := s.uow.VideoRepo().Create(ctx, domain.VideoRecord{
		ID:          uuid.New(),
		OwnerID:     identity.UserID,
		StorageKey:  key,
		VideoURL:    publicURL,
		Title:       challenge.Title(),
		TaskLabel:   challenge.Task,
		ContentType: payload.ContentType,
		SizeBytes:   payload.Size(),
	})
	if err != nil {
		// TODO: decide between a compensating delete here and the out-of-band orphan reconciler
		s.logger.Warn("object written but video record insert failed, object left in storage", "key", key, "error", err)
		metrics.RecordOrphan("upload", "left")
		metrics.RecordUpload("failure", 0)
		return nil, classify(err, key, asset.FileName, asset.URI)
	}

	metrics.RecordUpload("success", payload.Size())
	s.logger.Info("video upload completed", "key", key, "video_id", record.ID, "url", record.VideoURL)
	return record, nil
}

// readPayload tries every reader in order and returns the first payload produced
func (s *uploadService) readPayload(ctx context.Context, asset domain.MediaAsset) (*domain.Payload, error) {
	if len(s.readers) == 0 {
		return nil, domain.ErrNoPayloadReader
	}

	var errs []error
	for i, reader := range s.readers {
		if i > 0 {
			s.logger.Warn("falling back to next payload reader", "reader", reader.Name(), "previous_error", errs[len(errs)-1])
		}

		payload, err := reader.Read(ctx, asset)
		if err != nil {
			metrics.RecordPayloadRead(reader.Name(), "error")
			errs = append(errs, fmt.Errorf("%s: %w", reader.Name(), err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		metrics.RecordPayloadRead(reader.Name(), "ok")
		if payload.ContentType == "" {
			payload.ContentType = domain.DefaultVideoContentType
		}
		return payload, nil
	}
	return nil, errors.Join(errs...)
}
