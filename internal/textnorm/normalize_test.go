package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases", "Girls Generation", "girls generation"},
		{"collapses whitespace", "  Rosé   한  ", "rose 한"},
		{"punctuation becomes space", "Girls' Generation", "girls generation"},
		{"curly apostrophe", "Girls’ Generation", "girls generation"},
		{"dotted abbreviation", "s.n.s.d", "s n s d"},
		{"drops ost token", "Goblin OST", "goblin"},
		{"drops ost in middle", "Goblin OST Part 1", "goblin part 1"},
		{"keeps ost inside word", "Frost", "frost"},
		{"punctuation only falls back", "! @\n#   $%", "! @ # $%"},
		{"ost only falls back", "OST", "ost"},
		{"keeps hangul", "소녀시대", "소녀시대"},
		{"keeps kana voicing", "ガールズ", "ガールズ"},
		{"keeps kanji", "少女時代", "少女時代"},
		{"strips accents", "Beyoncé Knowles", "beyonce knowles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	if got := Normalize("foo$"); got != "foo" {
		t.Errorf("Normalize(foo$) = %q, want foo", got)
	}
	if got := Normalize("foo$", WithKeepSpecial()); got != "foo$" {
		t.Errorf("Normalize(foo$, keep special) = %q, want foo$", got)
	}
	if got := NoSpace("So Nyeo Si Dae"); got != "sonyeosidae" {
		t.Errorf("NoSpace() = %q, want sonyeosidae", got)
	}
	if got := NoSpace("Goblin OST"); got != "goblin" {
		t.Errorf("NoSpace(Goblin OST) = %q, want goblin", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Girls' Generation",
		"  Rosé   한  ",
		"! @\n#   $%",
		"OST",
		"ost !",
		"a ÓST",
		"İstanbul",
		"(G)I-DLE ((여자)아이들)",
		"Heart 2 Heart with 소녀시대",
		"ガールズ・ジェネレーション",
		"é",
	}
	for _, input := range inputs {
		for _, opts := range [][]Option{nil, {WithoutSpaces()}, {WithKeepSpecial()}} {
			once := Normalize(input, opts...)
			twice := Normalize(once, opts...)
			if once != twice {
				t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
			}
		}
	}
}

func TestStripMarks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"café", "cafe"},
		{"Ångström", "Angstrom"},
		{"소녀시대", "소녀시대"},
		{"がぱ", "がぱ"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripMarks(tt.input); got != tt.want {
			t.Errorf("StripMarks(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCollapse(t *testing.T) {
	if got := Collapse("  a \t b\n c "); got != "a b c" {
		t.Errorf("Collapse() = %q, want %q", got, "a b c")
	}
}
