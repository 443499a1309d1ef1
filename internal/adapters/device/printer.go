package device

import (
	"challenge-clips/internal/core/domain"
	"context"
	"fmt"
	"io"
)

// TerminalSink prints notifications for the user
type TerminalSink struct {
	out io.Writer
}

func NewTerminalSink(out io.Writer) *TerminalSink {
	return &TerminalSink{out: out}
}

func (s *TerminalSink) Deliver(_ context.Context, n domain.Notification) error {
	if _, err := fmt.Fprintf(s.out, "[%s] %s: %s\n", n.Level, n.Title, n.Message); err != nil {
		return err
	}
	if n.Action != nil {
		_, err := fmt.Fprintf(s.out, "  -> %s (%s)\n", n.Action.Label, n.Action.Route)
		return err
	}
	return nil
}
