package name_test

import (
	"sync"
	"testing"

	"namesake/internal/name"
)

func girlsGeneration() *name.Name {
	return name.New("Girls' Generation", "소녀시대",
		name.WithRomanized("So Nyeo Si Dae"),
		name.WithVersions(
			name.New("SNSD", "소녀시대", name.WithRomanized("So Nyeo Si Dae")),
			name.New("Girls' Generation", "少女時代", name.WithRomanized("Shoujo Jidai")),
		),
	)
}

func TestMatchesSelf(t *testing.T) {
	names := []*name.Name{
		name.New("Girls' Generation", ""),
		name.New("", "소녀시대"),
		name.New("Apink", "에이핑크"),
		{NonEng: "Привет"},
		{LitTranslation: "Girl Generation"},
		{Romanized: "So Nyeo Si Dae"},
		{NonEng: "!!"},
		girlsGeneration(),
	}
	for _, n := range names {
		if !n.Matches(n) {
			t.Errorf("%q.Matches(itself) = false, want true (scores %v)", n, n.Scores(n))
		}
	}
}

func TestZeroNeverMatches(t *testing.T) {
	empty := &name.Name{}
	if empty.Matches(empty) {
		t.Error("empty.Matches(empty) = true")
	}
	blank := &name.Name{English: "  ", NonEng: "\t"}
	if blank.Matches(blank) {
		t.Error("blank.Matches(blank) = true")
	}
	marks := &name.Name{NonEng: "\u0301"}
	if !marks.IsZero() || marks.Matches(marks) {
		t.Error("a name of combining marks alone must be zero")
	}
	if name.New("SNSD", "").Matches(empty) {
		t.Error("SNSD.Matches(empty) = true")
	}
	var nilName *name.Name
	if nilName.Matches(name.New("SNSD", "")) {
		t.Error("nil.Matches(SNSD) = true")
	}
	if got := empty.MatchScore(empty); got != 0 {
		t.Errorf("MatchScore(empty) = %d, want 0", got)
	}
}

func TestEndToEndAbbreviationVersion(t *testing.T) {
	n := name.New("Girls' Generation", "소녀시대",
		name.WithRomanized("So Nyeo Si Dae"),
		name.WithVersions(name.New("SNSD", "소녀시대")),
	)
	if !n.MatchesText("SNSD") {
		t.Fatalf("MatchesText(SNSD) = false (scores %v)", n.Scores(&name.Name{English: "SNSD"}))
	}
	plain := name.New("Girls' Generation", "소녀시대", name.WithRomanized("So Nyeo Si Dae"))
	if plain.MatchesText("SNSD") {
		t.Fatal("abbreviation matched without an explicit version")
	}
}

func TestMatchesMultiLanguageVersions(t *testing.T) {
	n := girlsGeneration()
	positives := []string{
		"girls generation",
		"Girls' Generation",
		"Girls’ Generation",
		"소녀시대",
		"snsd",
		"SNSD",
		"s.n.s.d",
		"So Nyeo Si Dae",
		"Shoujo Jidai",
		"少女時代",
		"Girls' Generation (SNSD)",
		"Girls' Generation (소녀시대)",
		"Girls' Generation (少女時代)",
		"少女時代(SNSD)",
		"소녀시대(SNSD)",
		"소녀시대(Girls' Generation)",
	}
	for _, text := range positives {
		t.Run(text, func(t *testing.T) {
			other := name.Parse(text)
			if !n.Matches(other) {
				t.Errorf("Matches(%q) = false (scores %v)", text, n.Scores(other))
			}
		})
	}

	negatives := []string{"Girls’ Generation-Oh!GG", "소녀시대-Oh!GG", "sns"}
	for _, text := range negatives {
		t.Run("not "+text, func(t *testing.T) {
			other := name.Parse(text)
			if n.Matches(other, name.WithThreshold(90)) {
				t.Errorf("Matches(%q) = true (scores %v)", text, n.Scores(other))
			}
		})
	}
}

func TestScriptMismatchSuppressesNativeScore(t *testing.T) {
	korean := name.New("", "소녀시대")
	tests := []*name.Name{
		name.New("", "ソニョシデ"),
		name.New("", "소녀시대ア"),
		name.New("", "少女時代"),
	}
	for _, other := range tests {
		if scores := korean.Scores(other); len(scores) != 0 {
			t.Errorf("Scores(%q) = %v, want empty pool", other, scores)
		}
		if korean.Matches(other) {
			t.Errorf("Matches(%q) = true", other)
		}
	}

	same := name.New("", "소녀시대")
	if scores := korean.Scores(same); len(scores) != 1 || scores[0] != 100 {
		t.Errorf("Scores(same script) = %v, want [100]", scores)
	}
}

func TestRomanizationSignal(t *testing.T) {
	n := &name.Name{NonEng: "소녀시대"}
	if scores := n.Scores(&name.Name{English: "sonyeosidae"}); len(scores) != 1 || scores[0] != name.DefaultRomanizationScore {
		t.Fatalf("Scores() = %v, want [%d]", scores, name.DefaultRomanizationScore)
	}

	// The signal is symmetric: the Latin side accepts the native side.
	latin := &name.Name{English: "So Nyeo Si Dae"}
	if !latin.Matches(n) {
		t.Errorf("latin.Matches(native) = false (scores %v)", latin.Scores(n))
	}

	if n.MatchesText("apple") {
		t.Error("MatchesText(apple) = true")
	}
}

func TestRomanizationIgnoresSoundtrackSuffix(t *testing.T) {
	tests := []struct {
		native string
		latin  string
	}{
		{"도깨비 OST", "Dokkaebi OST"},
		{"도깨비 OST", "Dokkaebi"},
		{"도깨비", "Dokkaebi OST"},
		{"少女時代 OST", "Shaonv Shidai OST"},
	}
	for _, tt := range tests {
		t.Run(tt.native+"/"+tt.latin, func(t *testing.T) {
			n := &name.Name{NonEng: tt.native}
			other := &name.Name{English: tt.latin}
			scores := n.Scores(other)
			if len(scores) != 1 || scores[0] != name.DefaultRomanizationScore {
				t.Fatalf("Scores() = %v, want [%d]", scores, name.DefaultRomanizationScore)
			}
			if !n.Matches(other) || !other.Matches(n) {
				t.Errorf("Matches() = false in one direction")
			}
		})
	}
}

func TestKanjiReadingMatchesWithoutExplicitRomanization(t *testing.T) {
	n := name.New("", "少女時代")
	if !n.MatchesText("Shoujo Jidai") {
		t.Errorf("MatchesText(Shoujo Jidai) = false (scores %v)", n.Scores(&name.Name{English: "Shoujo Jidai"}))
	}
	if n.MatchesText("Shounen Jidai") {
		t.Error("MatchesText(Shounen Jidai) = true")
	}
}

func TestThresholdBoundaries(t *testing.T) {
	n := &name.Name{NonEng: "소녀시대"}
	tests := []struct {
		name string
		opts []name.MatchOption
		want bool
	}{
		{"pool equals default threshold", []name.MatchOption{name.WithRomanizationScore(80)}, true},
		{"pool one below default threshold", []name.MatchOption{name.WithRomanizationScore(79)}, false},
		{"romanization score equals threshold", []name.MatchOption{name.WithThreshold(95)}, true},
		{"threshold one above romanization score", []name.MatchOption{name.WithThreshold(96)}, false},
		{"romanization score one below threshold", []name.MatchOption{name.WithThreshold(95), name.WithRomanizationScore(94)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.MatchesText("sonyeosidae", tt.opts...); got != tt.want {
				t.Errorf("MatchesText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVersionAggregation(t *testing.T) {
	n := name.New("A", "", name.WithVersions(name.New("B", "")))
	if !n.MatchesText("B") {
		t.Fatalf("MatchesText(B) = false (scores %v)", n.Scores(&name.Name{English: "B"}))
	}
	if scores := n.Scores(&name.Name{English: "B"}); len(scores) != 2 {
		t.Fatalf("Scores() = %v, want two signals", scores)
	}
	if n.MatchesText("B", name.WithAggregate(name.Mean)) {
		t.Error("mean aggregate should not reach the threshold")
	}
	if n.MatchesText("B", name.WithAggregate(name.Min)) {
		t.Error("min aggregate should not reach the threshold")
	}
}

func TestOtherVersions(t *testing.T) {
	query := name.New("B", "")
	other := name.New("A", "", name.WithVersions(name.New("B", "")))
	if !query.Matches(other) {
		t.Error("Matches() with other versions = false")
	}
	if query.Matches(other, name.WithoutOtherVersions()) {
		t.Error("Matches() without other versions = true")
	}
}

func TestVersionExpansionIsBounded(t *testing.T) {
	a := name.New("A", "")
	b := name.New("B", "")
	a.Versions = []*name.Name{b}
	b.Versions = []*name.Name{a}
	if scores := a.Scores(b); len(scores) == 0 {
		t.Fatal("Scores() = empty pool")
	}
	if !a.Matches(b) {
		t.Error("mutual versions should match")
	}
}

func TestRequireMoreThanHangul(t *testing.T) {
	a, err := name.FromEnclosed("So Nyeo Si Dae (소녀시대)")
	if err != nil {
		t.Fatalf("FromEnclosed() error = %v", err)
	}
	b := name.New("Heart 2 Heart with 소녀시대", "")
	if a.Matches(b) {
		t.Errorf("a.Matches(b) = true (scores %v)", a.Scores(b))
	}
	if b.Matches(a) {
		t.Errorf("b.Matches(a) = true (scores %v)", b.Scores(a))
	}
}

func TestBestMatches(t *testing.T) {
	query := name.New("Apink", "에이핑크")
	candidates := []*name.Name{
		name.New("BTS", "방탄소년단"),
		name.New("Apink", ""),
		name.New("", "에이핑크"),
		name.New("A Pink", ""),
	}
	got := query.BestMatches(candidates)
	if len(got) != 3 {
		t.Fatalf("BestMatches() len = %d, want 3: %v", len(got), got)
	}
	want := []string{"에이핑크", "A Pink", "Apink"}
	for i, w := range want {
		if got[i].Name.String() != w || got[i].Score != 100 {
			t.Errorf("BestMatches()[%d] = %q/%d, want %q/100", i, got[i].Name, got[i].Score, w)
		}
	}

	best, score, ok := query.BestMatch(candidates)
	if !ok || best != candidates[2] || score != 100 {
		t.Errorf("BestMatch() = %v, %d, %v", best, score, ok)
	}
	if _, _, ok := query.BestMatch(candidates[:1]); ok {
		t.Error("BestMatch() found a match among unrelated names")
	}
}

func TestIsVersionOf(t *testing.T) {
	a := name.New("SNSD", "소녀시대")
	b := name.New("SNSD", "少女時代")
	if a.IsVersionOf(b, false) || b.IsVersionOf(a, false) {
		t.Error("conflicting native names must not be strict versions")
	}
	if !a.IsVersionOf(b, true) || !b.IsVersionOf(a, true) {
		t.Error("shared English name is a partial version")
	}
	if !name.New("SNSD", "").IsVersionOf(a, false) {
		t.Error("agreeing English with no conflicts is a version")
	}
	if name.New("BTS", "").IsVersionOf(a, true) {
		t.Error("unrelated names are not versions")
	}
}

func TestMatchesConcurrent(t *testing.T) {
	n := girlsGeneration()
	others := []string{"SNSD", "So Nyeo Si Dae", "少女時代", "Apink"}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := others[i%len(others)]
			want := text != "Apink"
			if got := n.Matches(name.Parse(text)); got != want {
				t.Errorf("Matches(%q) = %v, want %v", text, got, want)
			}
		}(i)
	}
	wg.Wait()
}
