package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStaticSlugs(t *testing.T) {
	name, found := Resolve(DimJobType, "per-diem")
	require.True(t, found)
	assert.Equal(t, "Per Diem", name)

	name, found = Resolve(DimSpecialty, "labor-delivery")
	require.True(t, found)
	assert.Equal(t, "Labor & Delivery", name)

	_, found = Resolve(DimSpecialty, "no-such-specialty")
	assert.False(t, found, "unknown slug must be a signal for a 404, not an empty page")
}

func TestRememberDynamicSlug(t *testing.T) {
	_, found := Resolve(DimShift, "baylor-weekend")
	require.False(t, found)

	Remember(DimShift, "Baylor Weekend")

	name, found := Resolve(DimShift, "baylor-weekend")
	require.True(t, found)
	assert.Equal(t, "Baylor Weekend", name)
}

func TestRememberNeverShadowsStatic(t *testing.T) {
	Remember(DimJobType, "Per Diem")

	name, found := Resolve(DimJobType, "per-diem")
	require.True(t, found)
	assert.Equal(t, "Per Diem", name)
}

func TestStateLookups(t *testing.T) {
	name, ok := StateName("oh")
	require.True(t, ok)
	assert.Equal(t, "Ohio", name)

	_, ok = StateName("OHI")
	assert.False(t, ok)
	assert.False(t, ValidStateCode("OHI"))
	assert.True(t, ValidStateCode("nc"))

	code, name, ok := StateBySlug("north-carolina")
	require.True(t, ok)
	assert.Equal(t, "NC", code)
	assert.Equal(t, "North Carolina", name)

	_, _, ok = StateBySlug("atlantis")
	assert.False(t, ok)
}
