package media

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"fmt"
)

// Readers returns the payload read strategies for a runtime, in the order they must be tried
func Readers(runtime domain.Runtime, fs port.FileSystem, fetch *FetchReader) ([]port.PayloadReader, error) {
	switch runtime {
	case domain.RuntimeBrowser:
		return []port.PayloadReader{fetch}, nil
	case domain.RuntimeNative:
		return []port.PayloadReader{NewFilesystemReader(fs), fetch}, nil
	default:
		return nil, fmt.Errorf("unknown runtime %q", runtime)
	}
}
