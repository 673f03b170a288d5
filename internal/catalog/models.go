package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"namesake/internal/name"
)

var (
	// ErrNotFound is returned when no entry has the requested ID.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrDuplicate is returned when an entry with the same kind and name already exists.
	ErrDuplicate = errors.New("catalog entry already exists")
	// ErrInvalidKind is returned for kinds outside the known set.
	ErrInvalidKind = errors.New("invalid catalog kind")
	// ErrEmptyName is returned when adding a name with no identity.
	ErrEmptyName = errors.New("catalog name is empty")
)

// Kind classifies what a catalog entry names.
type Kind string

const (
	KindArtist Kind = "artist"
	KindGroup  Kind = "group"
	KindAlbum  Kind = "album"
	KindTrack  Kind = "track"
)

// Kinds lists every valid Kind in display order.
func Kinds() []Kind {
	return []Kind{KindArtist, KindGroup, KindAlbum, KindTrack}
}

// ParseKind converts user input into a Kind.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, raw)
	}
	return k, nil
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindArtist, KindGroup, KindAlbum, KindTrack:
		return true
	}
	return false
}

// Entry is one stored reference name.
type Entry struct {
	ID      string     `json:"id"`
	Kind    Kind       `json:"kind"`
	Name    *name.Name `json:"name"`
	AddedAt time.Time  `json:"added_at"`
}

// importRecord is the JSON shape accepted by Import.
type importRecord struct {
	Kind Kind       `json:"kind"`
	Name *name.Name `json:"name"`
}
