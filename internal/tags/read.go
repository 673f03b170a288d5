package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file.
func Read(path string) (*Track, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if strings.ToLower(filepath.Ext(path)) == ExtMP3 {
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2Fallback(path)
		}
		return nil, fmt.Errorf("read tags %s: %w", path, err)
	}

	albumArtist := m.AlbumArtist()
	if albumArtist == "" {
		albumArtist = m.Artist()
	}
	return &Track{
		Path:        path,
		Title:       strings.TrimSpace(m.Title()),
		Artist:      strings.TrimSpace(m.Artist()),
		AlbumArtist: strings.TrimSpace(albumArtist),
		Album:       strings.TrimSpace(m.Album()),
	}, nil
}

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2 library.
func readMP3WithID3v2Fallback(path string) (*Track, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("read id3v2 %s: %w", path, err)
	}
	defer id3tag.Close()

	artist := id3tag.Artist()
	albumArtist := getID3TextFrame(id3tag, "TPE2")
	if albumArtist == "" {
		albumArtist = artist
	}
	return &Track{
		Path:        path,
		Title:       strings.TrimSpace(id3tag.Title()),
		Artist:      strings.TrimSpace(artist),
		AlbumArtist: strings.TrimSpace(albumArtist),
		Album:       strings.TrimSpace(id3tag.Album()),
	}, nil
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
