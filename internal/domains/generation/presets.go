package generation

import (
	"ariomuse-backend/internal/domains/composition/model"
)

// DefaultABC is the placeholder score rendered before the first
// generation: four empty 4/4 bars.
const DefaultABC = `X:1
T:Waiting for Inspiration
C:ArioMuse AI
M:4/4
L:1/4
Q:1/4=100
K:C
z4 | z4 | z4 | z4 |]
`

// Presets returns the curated settings bundles from the generator page.
func Presets() []Preset {
	return []Preset{
		{
			Name: "Cinematic Strings",
			Settings: model.CompositionSettings{
				Instrument:    model.InstrumentViolin,
				Key:           model.KeyDMinor,
				TimeSignature: model.TimeSixEight,
				Tempo:         140,
				Complexity:    model.ComplexityAdvanced,
				Mood:          model.MoodEpic,
				Prompt:        "A hans zimmer style building tension with rapid arpeggios.",
			},
		},
		{
			Name: "Sunday Morning Jazz",
			Settings: model.CompositionSettings{
				Instrument:    model.InstrumentPiano,
				Key:           model.KeyEbMajor,
				TimeSignature: model.TimeFourFour,
				Tempo:         90,
				Complexity:    model.ComplexityIntermediate,
				Mood:          model.MoodJazz,
				Prompt:        "Smooth jazz chords with a walking bassline feel.",
			},
		},
		{
			Name: "Ethereal Harp",
			Settings: model.CompositionSettings{
				Instrument:    model.InstrumentHarp,
				Key:           model.KeyFMajor,
				TimeSignature: model.TimeThreeFour,
				Tempo:         70,
				Complexity:    model.ComplexityIntermediate,
				Mood:          model.MoodEthereal,
				Prompt:        "Dreamy glissandos and gentle melody for meditation.",
			},
		},
	}
}
