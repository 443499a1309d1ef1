package device

import (
	"bufio"
	"challenge-clips/internal/core/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

var permissionPrompts = map[domain.PermissionKind]string{
	domain.PermissionCamera:       "Allow access to the camera?",
	domain.PermissionMediaLibrary: "Allow access to your video library?",
}

// TerminalGate asks the user for device permissions on the terminal
type TerminalGate struct {
	in        *bufio.Reader
	out       io.Writer
	canPrompt bool
	assumeYes bool
	logger    *slog.Logger
}

// NewTerminalGate creates a gate reading answers from in. When in is a file that is not
// a terminal nobody can answer and every permission is denied, unless assumeYes is set.
func NewTerminalGate(in io.Reader, out io.Writer, assumeYes bool, logger *slog.Logger) *TerminalGate {
	canPrompt := true
	if f, ok := in.(*os.File); ok {
		canPrompt = term.IsTerminal(int(f.Fd()))
	}
	return &TerminalGate{
		in:        bufio.NewReader(in),
		out:       out,
		canPrompt: canPrompt,
		assumeYes: assumeYes,
		logger:    logger,
	}
}

func (g *TerminalGate) Request(ctx context.Context, kind domain.PermissionKind) (domain.PermissionStatus, error) {
	if g.assumeYes {
		return domain.PermissionGranted, nil
	}
	if !g.canPrompt {
		g.logger.Warn("no terminal to ask for permission", "kind", kind)
		return domain.PermissionDenied, nil
	}

	prompt, ok := permissionPrompts[kind]
	if !ok {
		prompt = fmt.Sprintf("Allow %s access?", kind)
	}
	fmt.Fprintf(g.out, "%s [y/N] ", prompt)

	answer, err := readLine(ctx, g.in)
	if err != nil {
		return domain.PermissionDenied, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return domain.PermissionGranted, nil
	default:
		return domain.PermissionDenied, nil
	}
}

// readLine reads one trimmed line. EOF counts as an empty answer.
func readLine(ctx context.Context, r *bufio.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		line, err := r.ReadString('\n')
		if err == io.EOF {
			err = nil
		}
		done <- result{line: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}
