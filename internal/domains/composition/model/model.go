package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Tempo bounds in BPM.
const (
	MinTempo = 40
	MaxTempo = 220
)

// CompositionSettings is the value object describing what to generate. It
// is embedded in a Composition, never persisted on its own.
type CompositionSettings struct {
	Prompt        string        `json:"prompt"`
	Instrument    Instrument    `json:"instrument"`
	Complexity    Complexity    `json:"complexity"`
	Key           KeySignature  `json:"key"`
	TimeSignature TimeSignature `json:"timeSignature"`
	Tempo         int           `json:"tempo"`
	Mood          Mood          `json:"mood"`
}

func (s CompositionSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Instrument,
			validation.Required,
			validation.By(enumRule("instrument", s.Instrument.Valid)),
		),
		validation.Field(&s.Complexity,
			validation.Required,
			validation.By(enumRule("complexity", s.Complexity.Valid)),
		),
		validation.Field(&s.Key,
			validation.Required,
			validation.By(enumRule("key", s.Key.Valid)),
		),
		validation.Field(&s.TimeSignature,
			validation.Required,
			validation.By(enumRule("time signature", s.TimeSignature.Valid)),
		),
		validation.Field(&s.Tempo,
			validation.Required,
			validation.Min(MinTempo).Error(fmt.Sprintf("tempo must be at least %d BPM", MinTempo)),
			validation.Max(MaxTempo).Error(fmt.Sprintf("tempo must be at most %d BPM", MaxTempo)),
		),
		validation.Field(&s.Mood,
			validation.Required,
			validation.By(enumRule("mood", s.Mood.Valid)),
		),
	)
}

func enumRule(name string, valid func() bool) validation.RuleFunc {
	return func(interface{}) error {
		if !valid() {
			return fmt.Errorf("invalid %s", name)
		}
		return nil
	}
}

// CompositionVersion is one generated artifact. Immutable after creation;
// regeneration appends a new version instead of editing.
type CompositionVersion struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	ABCNotation string    `json:"abcNotation"`
	Commentary  string    `json:"commentary,omitempty"`
}

func (v CompositionVersion) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.ID, validation.By(requiredUUID)),
		validation.Field(&v.ABCNotation, validation.Required.Error("notation must not be empty")),
	)
}

// Composition is the aggregate root owned by exactly one user. Versions is
// append-only, insertion order is chronological.
type Composition struct {
	ID               uuid.UUID            `json:"id"`
	UserID           uuid.UUID            `json:"userId"`
	Title            string               `json:"title"`
	Settings         CompositionSettings  `json:"settings"`
	CurrentVersionID uuid.UUID            `json:"currentVersionId"`
	Versions         []CompositionVersion `json:"versions"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
	IsFavorite       bool                 `json:"isFavorite"`
	Tags             []string             `json:"tags"`
}

// Validate enforces the aggregate invariants: non-empty version history,
// a current version that resolves into it, and valid settings.
func (c *Composition) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.ID, validation.By(requiredUUID)),
		validation.Field(&c.UserID, validation.By(requiredUUID)),
		validation.Field(&c.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Versions, validation.Required.Error("composition must have at least one version")),
	); err != nil {
		return err
	}

	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	for _, v := range c.Versions {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("version %s: %w", v.ID, err)
		}
	}

	if c.CurrentVersion() == nil {
		return fmt.Errorf("currentVersionId %s does not reference a version", c.CurrentVersionID)
	}
	return nil
}

// CurrentVersion returns the version referenced by CurrentVersionID, or nil
// when the reference is dangling.
func (c *Composition) CurrentVersion() *CompositionVersion {
	for i := range c.Versions {
		if c.Versions[i].ID == c.CurrentVersionID {
			return &c.Versions[i]
		}
	}
	return nil
}

func requiredUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return fmt.Errorf("is required")
	}
	return nil
}
