package upload

import (
	"challenge-clips/internal/core/domain"
	"errors"
	"fmt"
	"strings"
)

var (
	permissionMarkers = []string{"permission", "policy", "access denied", "accessdenied", "forbidden"}
	sizeMarkers       = []string{"too large", "entitytoolarge", "exceeds the maximum", "maximum allowed size"}
	formatMarkers     = []string{"mime", "content type", "content-type", "unsupported media type"}
)

// classify maps a collaborator error onto the upload error taxonomy. Adapters type the errors they
// understand; otherwise only the innermost provider message is read, with the user supplied names
// removed. The provider error is kept as the cause.
func classify(err error, userSupplied ...string) error {
	if typed(err) {
		return err
	}

	msg := strings.ToLower(rootCause(err).Error())
	for _, s := range userSupplied {
		if s != "" {
			msg = strings.ReplaceAll(msg, strings.ToLower(s), "")
		}
	}

	switch {
	case containsAny(msg, permissionMarkers):
		return fmt.Errorf("%w: %w", domain.ErrPermissionDenied, err)
	case containsAny(msg, sizeMarkers):
		return fmt.Errorf("%w: %w", domain.ErrPayloadTooLarge, err)
	case containsAny(msg, formatMarkers):
		return fmt.Errorf("%w: %w", domain.ErrUnsupportedFormat, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrUnknown, err)
	}
}

// readFailure wraps a payload read error. Reads are local, only errors already typed by a reader keep their kind.
func readFailure(err error) error {
	if typed(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnknown, err)
}

func typed(err error) bool {
	for _, kind := range []error{domain.ErrPermissionDenied, domain.ErrPayloadTooLarge, domain.ErrUnsupportedFormat, domain.ErrUnauthenticated, domain.ErrUnknown} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// rootCause follows single error wrapping down to the provider error
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return "payload_too_large"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return "unsupported_format"
	default:
		return "failure"
	}
}
