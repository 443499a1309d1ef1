package storage

import (
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/domain"
	"fmt"
	"mime"
	"strings"
)

// Policy is the bucket upload policy enforced before an object is written
type Policy struct {
	MaxObjectSize int64
	AllowedTypes  []string
}

// NewPolicy builds the policy from the storage config
func NewPolicy(cfg config.StorageConfig) Policy {
	return Policy{MaxObjectSize: cfg.MaxObjectSize, AllowedTypes: cfg.AllowedTypes}
}

// Check rejects objects that are too large or of a type the bucket does not accept.
// An empty AllowedTypes accepts everything.
func (p Policy) Check(size int64, contentType string) error {
	if p.MaxObjectSize > 0 && size > p.MaxObjectSize {
		return fmt.Errorf("%w: object of %d bytes exceeds the %d bytes limit", domain.ErrPayloadTooLarge, size, p.MaxObjectSize)
	}
	if len(p.AllowedTypes) == 0 {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: invalid content type %q", domain.ErrUnsupportedFormat, contentType)
	}
	for _, allowed := range p.AllowedTypes {
		if strings.EqualFold(strings.TrimSpace(allowed), mediaType) {
			return nil
		}
	}
	return fmt.Errorf("%w: content type %s is not accepted", domain.ErrUnsupportedFormat, mediaType)
}
