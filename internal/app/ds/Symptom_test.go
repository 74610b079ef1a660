package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymptomCode(t *testing.T) {
	c, err := ParseSymptomCode("rashes")
	require.NoError(t, err)
	assert.Equal(t, SymptomRashes, c)

	c, err = ParseSymptomCode("")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	_, err = ParseSymptomCode("Rashes")
	assert.ErrorIs(t, err, ErrUnknownSymptom)
}

func TestSymptoms_ClosedSet(t *testing.T) {
	list := Symptoms()
	require.Len(t, list, 5)
	for _, s := range list {
		assert.True(t, s.Code.Valid())
		assert.Equal(t, s.Label, s.Code.Label())
	}
	assert.False(t, SymptomNone.Valid())

	list[0].Label = "changed"
	assert.Equal(t, "Dry & Rough Skin", SymptomDrySkin.Label())
}

func TestIsImageMediaType(t *testing.T) {
	for _, mt := range []string{"image/png", "image/jpeg", "image/svg+xml", "image/"} {
		assert.True(t, IsImageMediaType(mt), mt)
	}
	for _, mt := range []string{"", "text/plain", "application/pdf", "IMAGE/PNG", "video/image"} {
		assert.False(t, IsImageMediaType(mt), mt)
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "done", PhaseDone.String())
	assert.Equal(t, "unknown", Phase(7).String())
}
