package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"namesake/internal/name"
)

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		id             string
		kind           string
		english        string
		nonEng         string
		romanized      sql.NullString
		litTranslation sql.NullString
		extraJSON      sql.NullString
		addedRaw       string
	)
	if err := scanner.Scan(&id, &kind, &english, &nonEng, &romanized, &litTranslation, &extraJSON, &addedRaw); err != nil {
		return Entry{}, err
	}

	n := name.New(english, nonEng,
		name.WithRomanized(romanized.String),
		name.WithLitTranslation(litTranslation.String),
	)
	if extraJSON.Valid && extraJSON.String != "" {
		if err := json.Unmarshal([]byte(extraJSON.String), &n.Extra); err != nil {
			return Entry{}, fmt.Errorf("decode extra for %s: %w", id, err)
		}
	}

	entry := Entry{ID: id, Kind: Kind(kind), Name: n}
	if added, err := parseTimeString(addedRaw); err == nil {
		entry.AddedAt = added
	}
	return entry, nil
}

func marshalExtra(extra map[string]any) (any, error) {
	if len(extra) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return nil, fmt.Errorf("encode extra: %w", err)
	}
	return string(data), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
