package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const defaultFileName = "video.mp4"

// SanitizeFileName replaces every character outside [A-Za-z0-9.] with an underscore.
// Applying it twice yields the same result as applying it once.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// NewStorageKey builds the object key ownerID_millis_sanitizedName
func NewStorageKey(ownerID string, at time.Time, fileName string) string {
	if fileName == "" {
		fileName = defaultFileName
	}
	return fmt.Sprintf("%s_%d_%s", ownerID, at.UnixMilli(), SanitizeFileName(fileName))
}

// StorageKeyParts are the components of a storage key
type StorageKeyParts struct {
	OwnerID  string
	At       time.Time
	FileName string
}

// ParseStorageKey splits a key built by NewStorageKey. Owner ids may contain underscores,
// so the timestamp is the first all-digit segment followed by a file name segment.
func ParseStorageKey(key string) (*StorageKeyParts, error) {
	segments := strings.Split(key, "_")
	for i := 1; i < len(segments)-1; i++ {
		millis, err := strconv.ParseInt(segments[i], 10, 64)
		if err != nil {
			continue
		}
		return &StorageKeyParts{
			OwnerID:  strings.Join(segments[:i], "_"),
			At:       time.UnixMilli(millis),
			FileName: strings.Join(segments[i+1:], "_"),
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidStorageKey, key)
}
