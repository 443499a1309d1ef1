package storage

import (
	"challenge-clips/internal/core/domain"
	"fmt"
)

// ProviderError types an object store error from its S3 error code. Unknown codes are returned unchanged.
func ProviderError(code string, err error) error {
	switch code {
	case "AccessDenied", "AllAccessDisabled", "AccountProblem", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fmt.Errorf("%w: %w", domain.ErrPermissionDenied, err)
	case "EntityTooLarge", "MaxMessageLengthExceeded":
		return fmt.Errorf("%w: %w", domain.ErrPayloadTooLarge, err)
	default:
		return err
	}
}
