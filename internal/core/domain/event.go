package domain

import "time"

// BucketEvent represents a MinIO bucket notification
type BucketEvent struct {
	EventName string `json:"EventName"`
	Key       string `json:"Key"`
	Records   []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key  string `json:"key"`
				Size int64  `json:"size"`
				ETag string `json:"eTag"`
			} `json:"object"`
		} `json:"s3"`
		EventTime string `json:"eventTime"`
	} `json:"Records"`
}

// UploadEventType is the outcome carried by an UploadEvent
type UploadEventType string

const (
	UploadEventSucceeded UploadEventType = "video.uploaded"
	UploadEventFailed    UploadEventType = "video.upload_failed"
)

// UploadEvent is published once per upload attempt
type UploadEvent struct {
	Type       UploadEventType `json:"type"`
	OwnerID    string          `json:"owner_id,omitempty"`
	VideoID    string          `json:"video_id,omitempty"`
	StorageKey string          `json:"storage_key,omitempty"`
	VideoURL   string          `json:"video_url,omitempty"`
	Title      string          `json:"title,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// StoredObject describes an object listed from the object store
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// NewUploadEvent describes the outcome carried by notification
func NewUploadEvent(notification Notification, at time.Time) UploadEvent {
	if notification.Level != NotificationSuccess {
		return UploadEvent{
			Type:       UploadEventFailed,
			Reason:     notification.Message,
			OccurredAt: at,
		}
	}

	event := UploadEvent{Type: UploadEventSucceeded, OccurredAt: at}
	if record := notification.Record; record != nil {
		event.OwnerID = record.OwnerID
		event.VideoID = record.ID.String()
		event.StorageKey = record.StorageKey
		event.VideoURL = record.VideoURL
		event.Title = record.Title
	}
	return event
}
