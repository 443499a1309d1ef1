package domain

import "time"

// DefaultMaxCaptureDuration is the duration cap handed to the device picker
const DefaultMaxCaptureDuration = 60 * time.Second

// DefaultVideoContentType is used when the payload was read from the filesystem
const DefaultVideoContentType = "video/mp4"

// MediaAsset is a local, ephemeral reference to a recorded or selected video
type MediaAsset struct {
	URI      string
	FileName string
	MimeType string
}

// Payload is the binary content of a MediaAsset ready to be written to storage
type Payload struct {
	Data        []byte
	ContentType string
}

// Size returns the payload length in bytes
func (p *Payload) Size() int64 {
	return int64(len(p.Data))
}

// Runtime describes the platform capabilities the upload runs on
type Runtime string

const (
	RuntimeNative  Runtime = "native"
	RuntimeBrowser Runtime = "browser"
)

// Source selects where the workflow obtains media from
type Source string

const (
	SourceCamera  Source = "camera"
	SourceLibrary Source = "library"
)

// PermissionKind is the kind of device permission requested
type PermissionKind string

const (
	PermissionCamera       PermissionKind = "camera"
	PermissionMediaLibrary PermissionKind = "media_library"
)

// PermissionStatus is the answer of the device to a permission request
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// PickerOptions are passed to the device picker
type PickerOptions struct {
	MaxDuration time.Duration
}
