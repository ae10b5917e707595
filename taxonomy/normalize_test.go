package taxonomy

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "per diem", Fold("Per-Diem"))
	assert.Equal(t, "per diem", Fold("per_diem"))
	assert.Equal(t, "per diem", Fold("  PER   DIEM  "))
	assert.Equal(t, "new grad", Fold("new---grad"))
	assert.Equal(t, "l&d", Fold("L&D"))
	assert.Equal(t, "", Fold(""))
	assert.Equal(t, "", Fold("  - _ "))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []struct {
		dim Dimension
		raw string
	}{
		{DimSpecialty, "ICU"},
		{DimSpecialty, "wound care"},
		{DimJobType, "per-diem"},
		{DimExperience, "senior"},
		{DimShift, "NOC"},
	}

	// Same input always yields the same output, regardless of call order
	for round := 0; round < 3; round++ {
		for _, in := range inputs {
			first, ok1 := Normalize(in.dim, in.raw)
			second, ok2 := Normalize(in.dim, in.raw)
			require.True(t, ok1)
			require.True(t, ok2)
			assert.Equal(t, first, second, "normalize(%s, %q) not stable", in.dim, in.raw)
		}
	}
}

func TestNormalizeSkipsNullish(t *testing.T) {
	for _, raw := range []string{"", "   ", "-", "_-_"} {
		_, ok := Normalize(DimSpecialty, raw)
		assert.False(t, ok, "raw %q should contribute to no bucket", raw)
	}
}

func TestLegacySpecialtyFolding(t *testing.T) {
	for _, raw := range []string{"All Specialties", "all specialties", "ALL-SPECIALTIES"} {
		canon, ok := Normalize(DimSpecialty, raw)
		require.True(t, ok)
		assert.Equal(t, "General Nursing", canon.Display)
		assert.Equal(t, "general-nursing", canon.Slug)
	}
}

func TestLegacyJobTypeFolding(t *testing.T) {
	for _, raw := range []string{"PRN", "prn", "per diem", "per-diem", "Per Diem"} {
		canon, ok := Normalize(DimJobType, raw)
		require.True(t, ok)
		assert.Equal(t, "Per Diem", canon.Display, "raw %q", raw)
		assert.Equal(t, "per-diem", canon.Slug)
	}
}

func TestExperienceMigrationFolding(t *testing.T) {
	// The current taxonomy collapses both legacy extremes into Experienced;
	// there is deliberately no 1:1 mapping back to historical values.
	for _, raw := range []string{"entry level", "entry-level", "senior", "Senior"} {
		canon, ok := Normalize(DimExperience, raw)
		require.True(t, ok)
		assert.Equal(t, "Experienced", canon.Display, "raw %q", raw)
	}

	canon, ok := Normalize(DimExperience, "new-grad")
	require.True(t, ok)
	assert.Equal(t, "New Grad", canon.Display)
}

func TestCaseVariantsCollapse(t *testing.T) {
	for _, raw := range []string{"ICU", "icu", "Icu"} {
		canon, ok := Normalize(DimSpecialty, raw)
		require.True(t, ok)
		assert.Equal(t, "ICU", canon.Display)
		assert.Equal(t, "icu", canon.Slug)
	}
}

func TestTitleCaseFallbackPreservesAcronyms(t *testing.T) {
	cases := map[string]string{
		"wound care":    "Wound Care",
		"pediatric icu": "Pediatric ICU",
		"cvicu":         "CVICU",
		"step down pcu": "Step Down PCU",
	}
	for raw, want := range cases {
		canon, ok := Normalize(DimSpecialty, raw)
		require.True(t, ok)
		assert.Equal(t, want, canon.Display, "raw %q", raw)
	}
}

func TestTitleCaseFallbackHandlesMultibyte(t *testing.T) {
	// the first rune is capitalized, not the first byte
	canon, ok := Normalize(DimSpecialty, "échographie lab")
	require.True(t, ok)
	assert.Equal(t, "Échographie Lab", canon.Display)
	assert.True(t, utf8.ValidString(canon.Display))
}

func TestUnknownValuesStillBucket(t *testing.T) {
	// Availability over precision: an unrecognized tag is visible and
	// correctable rather than invisible.
	canon, ok := Normalize(DimShift, "split-shift")
	require.True(t, ok)
	assert.Equal(t, "Split Shift", canon.Display)
	assert.Equal(t, "split-shift", canon.Slug)
}

func TestFilterAliasKeys(t *testing.T) {
	keys := FilterAliasKeys(DimJobType, "Per Diem")
	assert.Contains(t, keys, "per diem")
	assert.Contains(t, keys, "prn")
	assert.Contains(t, keys, "perdiem")

	// Filtering by a raw alias resolves to the same canonical alias set
	fromAlias := FilterAliasKeys(DimJobType, "prn")
	assert.ElementsMatch(t, keys, fromAlias)

	// Unknown values match only themselves
	assert.Equal(t, []string{"wound care"}, FilterAliasKeys(DimSpecialty, "Wound-Care"))

	assert.Nil(t, FilterAliasKeys(DimSpecialty, "  "))
}
