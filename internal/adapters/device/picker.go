package device

import (
	"challenge-clips/internal/core/domain"
	"context"
)

// Picker combines a recorder and a library into a port.MediaPicker
type Picker struct {
	recorder *CommandRecorder
	library  *DirectoryLibrary
}

func NewPicker(recorder *CommandRecorder, library *DirectoryLibrary) *Picker {
	return &Picker{recorder: recorder, library: library}
}

func (p *Picker) Capture(ctx context.Context, opts domain.PickerOptions) (*domain.MediaAsset, error) {
	return p.recorder.Capture(ctx, opts)
}

func (p *Picker) Select(ctx context.Context, opts domain.PickerOptions) (*domain.MediaAsset, error) {
	return p.library.Select(ctx, opts)
}
