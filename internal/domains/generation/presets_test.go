package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ariomuse-backend/internal/domains/composition/model"
)

func TestPresetsAreValidSettings(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 3)

	seen := map[string]bool{}
	for _, p := range presets {
		assert.NotEmpty(t, p.Name)
		assert.False(t, seen[p.Name], "duplicate preset name %q", p.Name)
		seen[p.Name] = true
		assert.NoError(t, p.Settings.Validate(), p.Name)
	}
}

func TestDefaultABCIsAPlaceholderScore(t *testing.T) {
	assert.True(t, strings.HasPrefix(DefaultABC, "X:1\n"))
	assert.Contains(t, DefaultABC, "M:4/4")
	assert.Contains(t, DefaultABC, "K:C")
	// Four bars of rests, nothing to play yet.
	assert.Equal(t, 4, strings.Count(DefaultABC, "z4"))
}

func TestOptionsMirrorEnums(t *testing.T) {
	opts := Options()

	assert.Equal(t, model.InstrumentOptions(), opts.Instruments)
	assert.Equal(t, model.ComplexityOptions(), opts.Complexities)
	assert.Equal(t, model.KeySignatureOptions(), opts.Keys)
	assert.Equal(t, model.TimeSignatureOptions(), opts.TimeSignatures)
	assert.Equal(t, model.MoodOptions(), opts.Moods)
	assert.Equal(t, model.MinTempo, opts.Tempo.Min)
	assert.Equal(t, model.MaxTempo, opts.Tempo.Max)
}
