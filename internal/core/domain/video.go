package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated actor of a request
type Identity struct {
	UserID string
}

// Challenge is the challenge context active when a video is uploaded
type Challenge struct {
	ID        uuid.UUID
	Task      string
	ActiveOn  time.Time
	CreatedAt time.Time
}

// Title returns the title copied to the videos uploaded for this challenge
func (c Challenge) Title() string {
	return c.Task + " Challenge"
}

// VideoRecord is the persisted metadata of an uploaded video
type VideoRecord struct {
	ID          uuid.UUID
	OwnerID     string
	StorageKey  string
	VideoURL    string
	Title       string
	TaskLabel   string
	ContentType string
	SizeBytes   int64
	UploadedAt  time.Time
}
