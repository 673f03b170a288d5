package tags

import (
	"errors"
	"path/filepath"
	"strings"

	"namesake/internal/name"
)

// Supported audio file extensions.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// ErrUnsupported is returned for files whose extension is not a known audio format.
var ErrUnsupported = errors.New("unsupported audio format")

// Track holds the tag fields namesake matches on.
type Track struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
}

// Names holds parsed names for each tag field. Fields whose tag is empty are nil.
type Names struct {
	Artist      *name.Name
	AlbumArtist *name.Name
	Album       *name.Name
	Title       *name.Name
}

// Names parses every tag field with name.Parse, so "태연 (Taeyeon)" yields a
// two-script name.
func (t *Track) Names() Names {
	return Names{
		Artist:      parseField(t.Artist),
		AlbumArtist: parseField(t.AlbumArtist),
		Album:       parseField(t.Album),
		Title:       parseField(t.Title),
	}
}

func parseField(value string) *name.Name {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return name.Parse(value)
}

// IsSupported reports whether path has a supported audio extension.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtM4A, ExtMP4:
		return true
	}
	return false
}
