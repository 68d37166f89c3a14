package model

// Closed enum sets for composition settings. UI option lists are derived
// from these slices, never maintained separately.

type Instrument string

const (
	InstrumentPiano       Instrument = "Piano"
	InstrumentViolin      Instrument = "Violin"
	InstrumentGuitar      Instrument = "Guitar"
	InstrumentCello       Instrument = "Cello"
	InstrumentFlute       Instrument = "Flute"
	InstrumentClarinet    Instrument = "Clarinet"
	InstrumentTrumpet     Instrument = "Trumpet"
	InstrumentSaxophone   Instrument = "Saxophone"
	InstrumentDrums       Instrument = "Drums"
	InstrumentHarp        Instrument = "Harp"
	InstrumentSynthesizer Instrument = "Synthesizer"
)

func InstrumentOptions() []Instrument {
	return []Instrument{
		InstrumentPiano, InstrumentViolin, InstrumentGuitar, InstrumentCello,
		InstrumentFlute, InstrumentClarinet, InstrumentTrumpet, InstrumentSaxophone,
		InstrumentDrums, InstrumentHarp, InstrumentSynthesizer,
	}
}

func (i Instrument) Valid() bool {
	for _, opt := range InstrumentOptions() {
		if i == opt {
			return true
		}
	}
	return false
}

// Polyphonic reports whether the instrument can sound several notes at
// once, which changes how the generative service is told to write for it.
func (i Instrument) Polyphonic() bool {
	switch i {
	case InstrumentPiano, InstrumentGuitar, InstrumentHarp, InstrumentSynthesizer:
		return true
	}
	return false
}

type Complexity string

const (
	ComplexityBeginner     Complexity = "Beginner"
	ComplexityIntermediate Complexity = "Intermediate"
	ComplexityAdvanced     Complexity = "Advanced"
	ComplexityVirtuoso     Complexity = "Virtuoso"
)

func ComplexityOptions() []Complexity {
	return []Complexity{
		ComplexityBeginner, ComplexityIntermediate, ComplexityAdvanced, ComplexityVirtuoso,
	}
}

func (c Complexity) Valid() bool {
	for _, opt := range ComplexityOptions() {
		if c == opt {
			return true
		}
	}
	return false
}

type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodSad      Mood = "Sad"
	MoodEpic     Mood = "Epic"
	MoodRelaxing Mood = "Relaxing"
	MoodDark     Mood = "Dark"
	MoodRomantic Mood = "Romantic"
	MoodTense    Mood = "Tense"
	MoodEthereal Mood = "Ethereal"
	MoodJazz     Mood = "Jazz"
)

func MoodOptions() []Mood {
	return []Mood{
		MoodHappy, MoodSad, MoodEpic, MoodRelaxing, MoodDark,
		MoodRomantic, MoodTense, MoodEthereal, MoodJazz,
	}
}

func (m Mood) Valid() bool {
	for _, opt := range MoodOptions() {
		if m == opt {
			return true
		}
	}
	return false
}

type KeySignature string

const (
	KeyCMajor    KeySignature = "C Major"
	KeyGMajor    KeySignature = "G Major"
	KeyDMajor    KeySignature = "D Major"
	KeyAMajor    KeySignature = "A Major"
	KeyFMajor    KeySignature = "F Major"
	KeyBbMajor   KeySignature = "Bb Major"
	KeyEbMajor   KeySignature = "Eb Major"
	KeyAMinor    KeySignature = "A Minor"
	KeyEMinor    KeySignature = "E Minor"
	KeyDMinor    KeySignature = "D Minor"
	KeyCMinor    KeySignature = "C Minor"
	KeyChromatic KeySignature = "Chromatic"
)

func KeySignatureOptions() []KeySignature {
	return []KeySignature{
		KeyCMajor, KeyGMajor, KeyDMajor, KeyAMajor, KeyFMajor, KeyBbMajor,
		KeyEbMajor, KeyAMinor, KeyEMinor, KeyDMinor, KeyCMinor, KeyChromatic,
	}
}

func (k KeySignature) Valid() bool {
	for _, opt := range KeySignatureOptions() {
		if k == opt {
			return true
		}
	}
	return false
}

type TimeSignature string

const (
	TimeFourFour    TimeSignature = "4/4"
	TimeThreeFour   TimeSignature = "3/4"
	TimeSixEight    TimeSignature = "6/8"
	TimeFiveFour    TimeSignature = "5/4"
	TimeTwoFour     TimeSignature = "2/4"
	TimeTwelveEight TimeSignature = "12/8"
)

func TimeSignatureOptions() []TimeSignature {
	return []TimeSignature{
		TimeFourFour, TimeThreeFour, TimeSixEight, TimeFiveFour, TimeTwoFour, TimeTwelveEight,
	}
}

func (t TimeSignature) Valid() bool {
	for _, opt := range TimeSignatureOptions() {
		if t == opt {
			return true
		}
	}
	return false
}
