package device

import (
	"bufio"
	"challenge-clips/internal/core/domain"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".m4v":  true,
	".webm": true,
	".3gp":  true,
}

// DirectoryLibrary lets the user pick a video from a directory
type DirectoryLibrary struct {
	dir string
	in  *bufio.Reader
	out io.Writer
}

func NewDirectoryLibrary(dir string, in io.Reader, out io.Writer) *DirectoryLibrary {
	return &DirectoryLibrary{dir: dir, in: bufio.NewReader(in), out: out}
}

// Select lists the videos of the directory, newest first, and reads the user's choice.
// An empty answer cancels.
func (l *DirectoryLibrary) Select(ctx context.Context, _ domain.PickerOptions) (*domain.MediaAsset, error) {
	videos, err := l.videos()
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		fmt.Fprintf(l.out, "No videos found in %s\n", l.dir)
		return nil, domain.ErrCancelled
	}

	for i, v := range videos {
		fmt.Fprintf(l.out, "%2d) %s\n", i+1, filepath.Base(v))
	}
	fmt.Fprint(l.out, "Choose a video (empty to cancel): ")

	answer, err := readLine(ctx, l.in)
	if err != nil {
		return nil, err
	}
	if answer == "" || strings.EqualFold(answer, "q") {
		return nil, domain.ErrCancelled
	}

	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(videos) {
		return nil, fmt.Errorf("invalid choice %q", answer)
	}
	return assetFromPath(videos[choice-1]), nil
}

func (l *DirectoryLibrary) videos() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("could not read library: %w", err)
	}

	type video struct {
		path    string
		modTime int64
	}
	var found []video
	for _, e := range entries {
		if e.IsDir() || !videoExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		path, err := filepath.Abs(filepath.Join(l.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		found = append(found, video{path: path, modTime: info.ModTime().UnixNano()})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].modTime == found[j].modTime {
			return found[i].path < found[j].path
		}
		return found[i].modTime > found[j].modTime
	})

	paths := make([]string, len(found))
	for i, v := range found {
		paths[i] = v.path
	}
	return paths, nil
}
