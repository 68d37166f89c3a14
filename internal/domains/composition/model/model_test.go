package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validComposition() *Composition {
	versionID := uuid.New()
	now := time.Now().UTC()
	return &Composition{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Nocturne",
		Settings: CompositionSettings{
			Prompt:        "quiet night",
			Instrument:    InstrumentPiano,
			Complexity:    ComplexityIntermediate,
			Key:           KeyEMinor,
			TimeSignature: TimeFourFour,
			Tempo:         72,
			Mood:          MoodRelaxing,
		},
		CurrentVersionID: versionID,
		Versions: []CompositionVersion{{
			ID:          versionID,
			CreatedAt:   now,
			ABCNotation: "X:1\nK:Em\nEFGA|",
		}},
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      []string{},
	}
}

func TestCompositionValidateAccepts(t *testing.T) {
	require.NoError(t, validComposition().Validate())
}

func TestCompositionValidateRejects(t *testing.T) {
	t.Run("no versions", func(t *testing.T) {
		c := validComposition()
		c.Versions = nil
		assert.Error(t, c.Validate())
	})

	t.Run("dangling current version", func(t *testing.T) {
		c := validComposition()
		c.CurrentVersionID = uuid.New()
		assert.Error(t, c.Validate())
	})

	t.Run("empty notation", func(t *testing.T) {
		c := validComposition()
		c.Versions[0].ABCNotation = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing owner", func(t *testing.T) {
		c := validComposition()
		c.UserID = uuid.Nil
		assert.Error(t, c.Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		c := validComposition()
		c.Title = ""
		assert.Error(t, c.Validate())
	})
}

func TestCurrentVersionResolves(t *testing.T) {
	c := validComposition()

	v := c.CurrentVersion()
	require.NotNil(t, v)
	assert.Equal(t, c.CurrentVersionID, v.ID)

	c.CurrentVersionID = uuid.New()
	assert.Nil(t, c.CurrentVersion())
}

func TestSettingsTempoBounds(t *testing.T) {
	s := validComposition().Settings

	s.Tempo = MinTempo
	assert.NoError(t, s.Validate())

	s.Tempo = MaxTempo
	assert.NoError(t, s.Validate())

	s.Tempo = MinTempo - 1
	assert.Error(t, s.Validate())

	s.Tempo = MaxTempo + 1
	assert.Error(t, s.Validate())
}

func TestSettingsRejectUnknownEnums(t *testing.T) {
	base := validComposition().Settings

	s := base
	s.Instrument = "Kazoo"
	assert.Error(t, s.Validate())

	s = base
	s.Key = "H Major"
	assert.Error(t, s.Validate())

	s = base
	s.TimeSignature = "7/13"
	assert.Error(t, s.Validate())

	s = base
	s.Mood = "Grumpy"
	assert.Error(t, s.Validate())

	s = base
	s.Complexity = "Impossible"
	assert.Error(t, s.Validate())
}

func TestEnumValid(t *testing.T) {
	for _, i := range InstrumentOptions() {
		assert.True(t, i.Valid(), i)
	}
	assert.False(t, Instrument("Triangle").Valid())

	for _, k := range KeySignatureOptions() {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, KeySignature("Z Minor").Valid())
}

func TestInstrumentPolyphonic(t *testing.T) {
	assert.True(t, InstrumentPiano.Polyphonic())
	assert.True(t, InstrumentGuitar.Polyphonic())
	assert.True(t, InstrumentHarp.Polyphonic())
	assert.True(t, InstrumentSynthesizer.Polyphonic())

	assert.False(t, InstrumentViolin.Polyphonic())
	assert.False(t, InstrumentFlute.Polyphonic())
	assert.False(t, InstrumentDrums.Polyphonic())
}
