package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is an error thrown when no identity is available for the actor
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrPermissionDenied is an error thrown when the storage policy rejects the actor
var ErrPermissionDenied = errors.New("permission denied")

// ErrPayloadTooLarge is an error thrown when the storage rejects the payload size
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrUnsupportedFormat is an error thrown when the storage rejects the payload MIME type
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrUnknown is an error thrown for any unclassified upload failure
var ErrUnknown = errors.New("upload failed")

// ErrCancelled is returned when the user dismisses the picker. It is not a failure.
var ErrCancelled = errors.New("cancelled")

// ErrCameraPermissionDenied is an error thrown when the device refuses camera or library access
var ErrCameraPermissionDenied = errors.New("camera permission denied")

// ErrLibraryPermissionDenied is an error thrown when the device refuses media library access.
// It matches ErrCameraPermissionDenied so the workflow treats both refusals alike.
var ErrLibraryPermissionDenied = fmt.Errorf("media library access refused: %w", ErrCameraPermissionDenied)

// ErrObjectExists is an error thrown when an object already exists at a storage key
var ErrObjectExists = errors.New("object already exists")

// ErrNoPayloadReader is an error thrown when no payload read strategy is configured
var ErrNoPayloadReader = errors.New("no payload reader configured")

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrVideoRecordNotFound is an error thrown when a video record is not found
var ErrVideoRecordNotFound = errors.New("video record not found")

// ErrChallengeNotFound is an error thrown when a challenge is not found
var ErrChallengeNotFound = errors.New("challenge not found")

// ErrInvalidStorageKey is an error thrown when a storage key does not follow the owner_millis_name layout
var ErrInvalidStorageKey = errors.New("invalid storage key")
