package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"namesake/internal/catalog"
	"namesake/internal/logging"
	"namesake/internal/matcher"
	"namesake/internal/name"
	"namesake/internal/tags"
)

type fieldMatch struct {
	Tag     string `json:"tag"`
	EntryID string `json:"entry_id,omitempty"`
	Match   string `json:"match,omitempty"`
	Score   int    `json:"score"`
	Matched bool   `json:"matched"`
}

type identifyResult struct {
	Path   string      `json:"path"`
	Artist *fieldMatch `json:"artist,omitempty"`
	Album  *fieldMatch `json:"album,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type identifier struct {
	matcher *matcher.Matcher
	artists []matcher.Candidate
	albums  []matcher.Candidate
	logger  *slog.Logger
}

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "identify <file|dir>...",
		Short: "Match audio file tags against the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			runCtx := logging.ContextWithRunID(cmd.Context(), uuid.NewString())
			logger = logging.WithContext(runCtx, logging.NewComponentLogger(logger, "identify"))

			files, err := collectAudioFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no supported audio files found")
			}

			m, err := ctx.newMatcher(logger)
			if err != nil {
				return err
			}
			id := &identifier{matcher: m, logger: logger}
			if err := ctx.withCatalog(func(store *catalog.Store) error {
				return id.loadCandidates(runCtx, store)
			}); err != nil {
				return err
			}
			if len(id.artists) == 0 && len(id.albums) == 0 {
				logging.WarnWithContext(logger, "catalog has no artist or album entries", "catalog_empty",
					logging.String(logging.FieldErrorHint, "run `namesake catalog import` first"),
					logging.String(logging.FieldImpact, "no file can be identified"),
				)
			}

			results := make([]identifyResult, 0, len(files))
			for _, path := range files {
				if err := runCtx.Err(); err != nil {
					return err
				}
				result, err := id.identify(runCtx, path)
				if err != nil {
					return err
				}
				results = append(results, result)
			}
			logger.Info("identify complete",
				logging.String(logging.FieldEventType, "identify_summary"),
				logging.Int("files", len(files)),
			)

			if jsonOutput {
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderIdentifyTable(results, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func (id *identifier) loadCandidates(ctx context.Context, store *catalog.Store) error {
	for _, kind := range []catalog.Kind{catalog.KindArtist, catalog.KindGroup} {
		entries, err := store.List(ctx, kind)
		if err != nil {
			return err
		}
		id.artists = append(id.artists, catalog.Candidates(entries)...)
	}
	albums, err := store.List(ctx, catalog.KindAlbum)
	if err != nil {
		return err
	}
	id.albums = catalog.Candidates(albums)
	return nil
}

// identify reads one file and matches its artist and album tags. Tag read
// failures are reported per file; only cancellation aborts the run.
func (id *identifier) identify(ctx context.Context, path string) (identifyResult, error) {
	result := identifyResult{Path: path}
	track, err := tags.Read(path)
	if err != nil {
		logging.WarnWithContext(id.logger, "tag read failed", "tag_read_failed",
			logging.String("path", path),
			logging.String(logging.FieldImpact, "file skipped"),
			logging.Error(err),
		)
		result.Error = err.Error()
		return result, nil
	}

	names := track.Names()
	artist := names.AlbumArtist
	artistTag := track.AlbumArtist
	if artist == nil {
		artist, artistTag = names.Artist, track.Artist
	}
	if result.Artist, err = id.best(ctx, artistTag, artist, id.artists); err != nil {
		return result, err
	}
	if result.Album, err = id.best(ctx, track.Album, names.Album, id.albums); err != nil {
		return result, err
	}
	return result, nil
}

func (id *identifier) best(ctx context.Context, tag string, query *name.Name, candidates []matcher.Candidate) (*fieldMatch, error) {
	if query.IsZero() {
		return nil, nil
	}
	fm := &fieldMatch{Tag: tag}
	if len(candidates) == 0 {
		return fm, nil
	}
	best, ok, err := id.matcher.Best(ctx, query, candidates)
	if err != nil {
		return nil, err
	}
	if ok {
		fm.EntryID = best.Candidate.ID
		fm.Match = best.Candidate.Name.String()
		fm.Score = best.Score
		fm.Matched = true
	}
	return fm, nil
}

func collectAudioFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && tags.IsSupported(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

func renderIdentifyTable(results []identifyResult, colorize bool) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := []string{filepath.Base(r.Path)}
		if r.Error != "" {
			row = append(row, "error: "+r.Error)
			rows = append(rows, row)
			continue
		}
		row = append(row, fieldColumns(r.Artist, colorize)...)
		row = append(row, fieldColumns(r.Album, colorize)...)
		rows = append(rows, row)
	}
	return renderTable(
		[]string{"File", "Artist Tag", "Catalog Artist", "Score", "Album Tag", "Catalog Album", "Score"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight},
		colorize,
	)
}

func fieldColumns(fm *fieldMatch, colorize bool) []string {
	if fm == nil {
		return []string{"-", "-", "-"}
	}
	if !fm.Matched {
		return []string{fm.Tag, decisionLabel(false, colorize), "-"}
	}
	return []string{fm.Tag, fm.Match, strconv.Itoa(fm.Score)}
}
