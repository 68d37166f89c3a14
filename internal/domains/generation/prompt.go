package generation

import (
	"fmt"
	"strings"

	"ariomuse-backend/internal/domains/composition/model"
)

// BuildComposePrompt compiles settings into the instruction sent to the
// generative service: the composer persona plus explicit ABC formatting
// rules, then the concrete request. Keeping the rules in the prompt is
// what makes the output renderable; there is no local music-theory check.
func BuildComposePrompt(settings model.CompositionSettings) string {
	var b strings.Builder

	b.WriteString("You are ArioMuse, an expert composer and music theorist specializing in procedural music generation.\n")
	b.WriteString("Your goal is to compose a musically coherent, pleasing piece based on constraints.\n\n")

	b.WriteString("RULES FOR ABC NOTATION:\n")
	b.WriteString("1. Use standard ABC notation headers: X:1, T:Title, C:ArioMuse, M:Meter, L:Unit Length, Q:Tempo, K:Key.\n")
	b.WriteString("2. Ensure bar lines (|) are placed correctly according to the time signature.\n")
	fmt.Fprintf(&b, "3. Use appropriate note ranges for the requested instrument (%s).\n", settings.Instrument)
	b.WriteString("4. Add dynamics (pp, mp, mf, f) and articulation (.staccato, -tenuto) where appropriate for musicality.\n")
	if settings.Instrument.Polyphonic() {
		fmt.Fprintf(&b, "5. %s is polyphonic: use chords like [CEG] where the writing calls for it.\n", settings.Instrument)
	} else {
		fmt.Fprintf(&b, "5. %s is monophonic: write single notes only, no chords.\n", settings.Instrument)
	}
	b.WriteString("6. Ensure the piece lasts at least 8-16 bars.\n")
	b.WriteString("7. Use repeat signs (:| |:) if the structure calls for it (AABB form etc).\n\n")

	b.WriteString("OUTPUT FORMAT:\n")
	b.WriteString("JSON object with \"abc\" (string), \"commentary\" (string), \"title\" (string).\n\n")

	b.WriteString("COMPOSE REQUEST:\n")
	fmt.Fprintf(&b, "- Instrument: %s\n", settings.Instrument)
	fmt.Fprintf(&b, "- Key: %s\n", settings.Key)
	fmt.Fprintf(&b, "- Time Signature: %s\n", settings.TimeSignature)
	fmt.Fprintf(&b, "- Tempo: %d BPM\n", settings.Tempo)
	fmt.Fprintf(&b, "- Complexity: %s\n", settings.Complexity)
	fmt.Fprintf(&b, "- Mood: %s\n", settings.Mood)
	fmt.Fprintf(&b, "- Context/Prompt: %q\n\n", settings.Prompt)

	b.WriteString("Step-by-step reasoning:\n")
	b.WriteString("1. Determine chord progression based on Key and Mood.\n")
	b.WriteString("2. Construct melody based on Complexity.\n")
	b.WriteString("3. Generate valid ABC string.\n")

	return b.String()
}

// ideaPrompt asks for a one-sentence composition idea.
const ideaPrompt = "Give me a creative, sophisticated, short (1 sentence) music composition prompt " +
	"describing a mood, instrument, and specific musical technique. " +
	"Example: 'A baroque fugue in G minor featuring rapid harpsichord ornamentation.'"

// Canned idea suggestions used when the generative service is unavailable.
// Idea suggestions are non-critical UX, so they degrade instead of failing.
const (
	fallbackIdeaNoCredential = "A mysterious melody in the fog..."
	fallbackIdeaEmpty        = "A happy tune on a sunny day."
	fallbackIdeaError        = "A fast violin run in a minor key."
)

// resultSchema is the JSON response schema sent with compose requests;
// the service must return exactly these three fields.
func resultSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"abc":        map[string]interface{}{"type": "STRING"},
			"commentary": map[string]interface{}{"type": "STRING"},
			"title":      map[string]interface{}{"type": "STRING"},
		},
		"required": []string{"abc", "commentary", "title"},
	}
}
