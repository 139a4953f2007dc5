// Package music lists the local music library used as audio tracks.
package music

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/banyumedia/fotovid/internal/errs"
	"github.com/banyumedia/fotovid/internal/probe"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

var extensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".flac": {},
	".aac":  {},
	".m4a":  {},
	".ogg":  {},
}

// Track is one library entry with its display duration.
type Track struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// Library scans a music folder. Duration probes for the same file are
// collapsed through singleflight so a burst of listing requests does
// not fork a pile of identical ffprobe processes.
type Library struct {
	dir   string
	group singleflight.Group
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Dir returns the resolved music folder.
func (l *Library) Dir() string {
	return l.dir
}

// Path resolves a music filename inside the library folder.
func (l *Library) Path(name string) string {
	return filepath.Join(l.dir, filepath.Base(name))
}

// Files returns the sorted full paths of all music files.
func (l *Library) Files() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed read music folder %s", l.dir)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := extensions[utils.Ext(entry.Name())]; ok {
			files = append(files, filepath.Join(l.dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// List returns all tracks with their probed durations. A track whose
// duration cannot be read is still listed, with an empty duration.
func (l *Library) List() ([]Track, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}
	tracks := make([]Track, 0, len(files))
	for _, path := range files {
		tracks = append(tracks, Track{
			Name:     filepath.Base(path),
			Duration: l.duration(path),
		})
	}
	return tracks, nil
}

// Random picks one music file for a sourced job.
func (l *Library) Random() (string, error) {
	files, err := l.Files()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errs.NoMusicFiles
	}
	return files[rand.Intn(len(files))], nil
}

func (l *Library) duration(path string) string {
	v, _, _ := l.group.Do(path, func() (interface{}, error) {
		seconds, ok := probe.AudioDuration(path)
		if !ok {
			return "", nil
		}
		return utils.FormatClock(seconds), nil
	})
	s, _ := v.(string)
	return s
}
