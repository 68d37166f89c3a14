package generation

import (
	"ariomuse-backend/internal/domains/composition/model"
)

// Result is a complete, validated generation response. All three fields
// are guaranteed non-empty; a response missing any of them is rejected
// wholesale rather than returned partially.
type Result struct {
	Title       string `json:"title"`
	ABCNotation string `json:"abc"`
	Commentary  string `json:"commentary"`
}

// Preset is a curated settings bundle shown on the generator page.
type Preset struct {
	Name     string                    `json:"name"`
	Settings model.CompositionSettings `json:"settings"`
}

// TempoRange bounds the tempo slider.
type TempoRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// OptionsResponse is the derived projection of the closed enum sets; the
// UI renders these lists instead of maintaining its own.
type OptionsResponse struct {
	Instruments    []model.Instrument    `json:"instruments"`
	Complexities   []model.Complexity    `json:"complexities"`
	Keys           []model.KeySignature  `json:"keys"`
	TimeSignatures []model.TimeSignature `json:"timeSignatures"`
	Moods          []model.Mood          `json:"moods"`
	Tempo          TempoRange            `json:"tempo"`
}

func Options() OptionsResponse {
	return OptionsResponse{
		Instruments:    model.InstrumentOptions(),
		Complexities:   model.ComplexityOptions(),
		Keys:           model.KeySignatureOptions(),
		TimeSignatures: model.TimeSignatureOptions(),
		Moods:          model.MoodOptions(),
		Tempo:          TempoRange{Min: model.MinTempo, Max: model.MaxTempo},
	}
}
