package name_test

import (
	"testing"

	"namesake/internal/name"
)

func assertSameName(t *testing.T, got, want *name.Name) {
	t.Helper()
	if got.English != want.English || got.NonEng != want.NonEng ||
		got.Romanized != want.Romanized || got.LitTranslation != want.LitTranslation {
		t.Fatalf("name = %q %v, want %q %v", got, got.Parts(), want, want.Parts())
	}
	if len(got.Versions) != len(want.Versions) {
		t.Fatalf("versions of %q = %v, want %v", got, got.Versions, want.Versions)
	}
	for i := range want.Versions {
		assertSameName(t, got.Versions[i], want.Versions[i])
	}
}

func TestCombineWithoutConflict(t *testing.T) {
	a := name.New("Apink", "에이핑크")
	b := name.New("Apink", "エーピンク")
	c := name.New("Apink", "에이핑크", name.WithVersions(b))

	assertSameName(t, name.Combine(c, a), c)
	assertSameName(t, name.Combine(name.New("Apink", ""), name.New("", "에이핑크")), a)
	assertSameName(t, name.Combine(name.New("Apink", ""), name.New("", "エーピンク")), b)

	full := name.New("SNSD", "소녀시대", name.WithRomanized("So Nyeo Si Dae"))
	assertSameName(t, name.Combine(full, name.New("SNSD", "")), full)
	assertSameName(t, name.Combine(
		name.New("SNSD", "", name.WithRomanized("So Nyeo Si Dae")),
		name.New("SNSD", "소녀시대"),
	), full)
}

func TestCombineWithConflict(t *testing.T) {
	b := name.New("Apink", "エーピンク")
	c := name.New("Apink", "에이핑크", name.WithVersions(b))
	assertSameName(t, name.Combine(c, b), c)

	a := name.New("SNSD", "소녀시대", name.WithVersions(&name.Name{NonEng: "少女時代"}))
	other := name.New("SNSD", "少女時代", name.WithVersions(&name.Name{NonEng: "소녀시대"}))
	want := name.New("SNSD", "소녀시대", name.WithVersions(name.New("SNSD", "少女時代")))
	assertSameName(t, name.Combine(a, other), want)
}

func TestCombineExtraAndNil(t *testing.T) {
	a := name.New("SNSD", "", name.WithExtra("group", true))
	b := name.New("", "소녀시대", name.WithExtra("members", 9))
	got := name.Combine(a, b)
	if got.Extra["group"] != true || got.Extra["members"] != 9 {
		t.Errorf("Combine().Extra = %v", got.Extra)
	}
	if _, ok := a.Extra["members"]; ok {
		t.Error("Combine() modified its input")
	}

	assertSameName(t, name.Combine(nil, a), a)
	assertSameName(t, name.Combine(a, nil), a)
	if !name.Combine(nil, nil).IsZero() {
		t.Error("Combine(nil, nil) should be zero")
	}
}
