package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// WriteTaggedMP3 creates a one-frame MP3 at path carrying the given ID3v2 text
// frames (for example "TPE1" for the artist), encoded as UTF-8.
func WriteTaggedMP3(t testing.TB, path string, frames map[string]string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	// MPEG1 Layer3, 128kbps, 44100Hz frame header plus padding.
	frame := make([]byte, 417)
	frame[0], frame[1], frame[2] = 0xff, 0xfb, 0x90
	if err := os.WriteFile(path, frame, 0o600); err != nil {
		t.Fatalf("create %s: %v", path, err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open %s for tagging: %v", path, err)
	}
	defer tag.Close()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	for id, text := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("save tags for %s: %v", path, err)
	}
}
