package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"namesake/internal/catalog"
	"namesake/internal/logging"
	"namesake/internal/matcher"
	"namesake/internal/name"
	"namesake/internal/testsupport"
)

func openStore(t *testing.T) *catalog.Store {
	t.Helper()
	return testsupport.MustOpenCatalog(t, testsupport.NewConfig(t))
}

func TestAddAndGet(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	snsd := name.New("Girls' Generation", "소녀시대",
		name.WithRomanized("So Nyeo Si Dae"),
		name.WithVersions(name.New("SNSD", "소녀시대"), name.New("", "少女時代", name.WithLitTranslation("Girls' Era"))),
		name.WithExtra("agency", "SM"),
	)
	entry, err := store.Add(ctx, catalog.KindGroup, snsd)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if entry.ID == "" || entry.AddedAt.IsZero() {
		t.Fatalf("Add returned incomplete entry: %#v", entry)
	}

	got, err := store.Get(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Kind != catalog.KindGroup {
		t.Fatalf("Kind = %q, want group", got.Kind)
	}
	if !got.Name.Equal(snsd) || got.Name.Romanized != "So Nyeo Si Dae" {
		t.Fatalf("Name = %#v", got.Name)
	}
	if len(got.Name.Versions) != 2 {
		t.Fatalf("Versions = %d, want 2", len(got.Name.Versions))
	}
	if got.Name.Versions[0].English != "SNSD" || got.Name.Versions[1].LitTranslation != "Girls' Era" {
		t.Fatalf("versions out of order: %v, %v", got.Name.Versions[0], got.Name.Versions[1])
	}
	if got.Name.Extra["agency"] != "SM" {
		t.Fatalf("Extra = %v", got.Name.Extra)
	}
	if !got.Name.MatchesText("SNSD") {
		t.Fatal("stored name should still match its abbreviation")
	}
}

func TestAddValidation(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.Add(ctx, catalog.Kind("label"), name.New("SM", "")); !errors.Is(err, catalog.ErrInvalidKind) {
		t.Fatalf("Add(bad kind) error = %v, want ErrInvalidKind", err)
	}
	if _, err := store.Add(ctx, catalog.KindArtist, &name.Name{}); !errors.Is(err, catalog.ErrEmptyName) {
		t.Fatalf("Add(empty) error = %v, want ErrEmptyName", err)
	}

	if _, err := store.Add(ctx, catalog.KindArtist, name.New("Taeyeon", "태연")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := store.Add(ctx, catalog.KindArtist, name.New("Taeyeon", "태연")); !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("Add(duplicate) error = %v, want ErrDuplicate", err)
	}
	if _, err := store.Add(ctx, catalog.KindAlbum, name.New("Taeyeon", "태연")); err != nil {
		t.Fatalf("same name under another kind should be allowed: %v", err)
	}
}

func TestGetRemoveNotFound(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
	if err := store.Remove(ctx, "missing"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Remove error = %v, want ErrNotFound", err)
	}

	entry, err := store.Add(ctx, catalog.KindGroup, name.New("Apink", "에이핑크", name.WithVersions(name.New("A Pink", ""))))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Remove(ctx, entry.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := store.Get(ctx, entry.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Get after remove error = %v", err)
	}
	count, err := store.Count(ctx)
	if err != nil || count != 0 {
		t.Fatalf("Count() = %d, %v", count, err)
	}
}

func TestListFiltersAndOrders(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, add := range []struct {
		kind catalog.Kind
		n    *name.Name
	}{
		{catalog.KindGroup, name.New("Twice", "트와이스")},
		{catalog.KindArtist, name.New("IU", "아이유")},
		{catalog.KindGroup, name.New("Apink", "에이핑크", name.WithVersions(name.New("A Pink", "")))},
	} {
		if _, err := store.Add(ctx, add.kind, add.n); err != nil {
			t.Fatalf("Add(%v) failed: %v", add.n, err)
		}
	}

	groups, err := store.List(ctx, catalog.KindGroup)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(groups) != 2 || groups[0].Name.English != "Apink" || groups[1].Name.English != "Twice" {
		t.Fatalf("List(group) = %v", groups)
	}
	if len(groups[0].Name.Versions) != 1 || len(groups[1].Name.Versions) != 0 {
		t.Fatalf("versions not attached per entry: %v / %v", groups[0].Name.Versions, groups[1].Name.Versions)
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List(all) failed: %v", err)
	}
	if len(all) != 3 || all[0].Kind != catalog.KindArtist {
		t.Fatalf("List(all) = %v", all)
	}

	if _, err := store.List(ctx, catalog.Kind("label")); !errors.Is(err, catalog.ErrInvalidKind) {
		t.Fatalf("List(bad kind) error = %v", err)
	}
}

func TestImportSkipsDuplicates(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.Add(ctx, catalog.KindGroup, name.New("Twice", "트와이스")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	input := `[
  {"kind": "group", "name": {"english": "Girls' Generation", "non_eng": "소녀시대",
    "versions": [{"english": "SNSD", "non_eng": "소녀시대"}]}},
  {"kind": "group", "name": {"english": "Girls' Generation", "non_eng": "소녀시대"}},
  {"kind": "group", "name": {"english": "Twice", "non_eng": "트와이스"}},
  {"kind": "artist", "name": {"english": "Taeyeon", "non_eng": "태연", "extra": {"born": 1989}}}
]`
	stats, err := store.Import(ctx, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if stats.Added != 2 || stats.Skipped != 2 {
		t.Fatalf("Import stats = %+v, want 2 added 2 skipped", stats)
	}
	count, err := store.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("Count() = %d, %v; want 3", count, err)
	}

	artists, err := store.List(ctx, catalog.KindArtist)
	if err != nil || len(artists) != 1 {
		t.Fatalf("List(artist) = %v, %v", artists, err)
	}
	if born, ok := artists[0].Name.Extra["born"].(float64); !ok || born != 1989 {
		t.Fatalf("Extra[born] = %#v", artists[0].Name.Extra["born"])
	}
}

func TestImportRejectsBadInput(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"bad kind", `[{"kind": "label", "name": {"english": "SM"}}]`, catalog.ErrInvalidKind},
		{"empty name", `[{"kind": "artist", "name": {}}]`, catalog.ErrEmptyName},
		{"missing name", `[{"kind": "artist"}]`, catalog.ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Import(ctx, strings.NewReader(tt.input)); !errors.Is(err, tt.want) {
				t.Fatalf("Import error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := store.Import(ctx, strings.NewReader("not json")); err == nil {
		t.Fatal("expected decode error")
	}
	if count, _ := store.Count(ctx); count != 0 {
		t.Fatalf("failed imports must not write entries, count = %d", count)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := catalog.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = store.Close()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("update version: %v", err)
	}
	_ = db.Close()

	if _, err := catalog.Open(path); !errors.Is(err, catalog.ErrSchemaMismatch) {
		t.Fatalf("Open error = %v, want ErrSchemaMismatch", err)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := catalog.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.Add(context.Background(), catalog.KindArtist, name.New("IU", "아이유")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	_ = store.Close()

	store, err = catalog.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if count, err := store.Count(context.Background()); err != nil || count != 1 {
		t.Fatalf("Count() after reopen = %d, %v", count, err)
	}
}

func TestWithLock(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	ran := false
	if err := catalog.WithLock(context.Background(), dbPath, func() error {
		ran = true
		return nil
	}); err != nil || !ran {
		t.Fatalf("WithLock() = %v, ran = %v", err, ran)
	}

	holder := flock.New(catalog.LockPath(dbPath))
	if ok, err := holder.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock() = %v, %v", ok, err)
	}
	defer func() { _ = holder.Unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	err := catalog.WithLock(ctx, dbPath, func() error {
		t.Error("fn must not run while the lock is held")
		return nil
	})
	if !errors.Is(err, catalog.ErrLocked) {
		t.Fatalf("WithLock() error = %v, want ErrLocked", err)
	}

	sentinel := errors.New("boom")
	_ = holder.Unlock()
	if err := catalog.WithLock(context.Background(), dbPath, func() error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("WithLock() error = %v, want fn error", err)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := catalog.ParseKind(" Group "); err != nil || k != catalog.KindGroup {
		t.Fatalf("ParseKind() = %q, %v", k, err)
	}
	if _, err := catalog.ParseKind("label"); !errors.Is(err, catalog.ErrInvalidKind) {
		t.Fatalf("ParseKind(label) error = %v", err)
	}
}

func TestCandidatesFeedMatcher(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	for _, n := range []*name.Name{
		name.New("Girls' Generation", "소녀시대", name.WithVersions(name.New("SNSD", "소녀시대"))),
		name.New("Twice", "트와이스"),
	} {
		if _, err := store.Add(ctx, catalog.KindGroup, n); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	entries, err := store.List(ctx, catalog.KindGroup)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	m := matcher.New(logging.NewNop(), matcher.WithWorkers(2))
	best, ok, err := m.Best(ctx, name.New("SNSD", ""), catalog.Candidates(entries))
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if !ok || best.Candidate.Name.English != "Girls' Generation" {
		t.Fatalf("Best() = %+v, %v", best, ok)
	}
}
