package composition

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ariomuse-backend/internal/domains/composition/model"
)

// VersionInput is a generated artifact as submitted by the client, before
// it gets an id and timestamp.
type VersionInput struct {
	ABCNotation string `json:"abcNotation" binding:"required"`
	Commentary  string `json:"commentary,omitempty"`
}

func (v VersionInput) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.ABCNotation, validation.Required.Error("notation must not be empty")),
	)
}

// CreateRequest saves a freshly generated result as a new composition.
type CreateRequest struct {
	Title    string                    `json:"title" binding:"required"`
	Settings model.CompositionSettings `json:"settings"`
	Version  VersionInput              `json:"version"`
	Tags     []string                  `json:"tags,omitempty"`
}

func (r CreateRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
	); err != nil {
		return err
	}
	if err := r.Settings.Validate(); err != nil {
		return err
	}
	return r.Version.Validate()
}

// UpdateRequest is a full-record replace of the mutable fields: title,
// favorite flag and tags. Versions only change through AppendVersion.
type UpdateRequest struct {
	Title      string   `json:"title" binding:"required"`
	IsFavorite bool     `json:"isFavorite"`
	Tags       []string `json:"tags"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
	)
}

// AppendVersionRequest records a regeneration: history is kept, the new
// version becomes current, and the settings that produced it replace the
// stored ones.
type AppendVersionRequest struct {
	Settings model.CompositionSettings `json:"settings"`
	Version  VersionInput              `json:"version"`
}

func (r AppendVersionRequest) Validate() error {
	if err := r.Settings.Validate(); err != nil {
		return err
	}
	return r.Version.Validate()
}

// FavoriteRequest toggles the favorite flag.
type FavoriteRequest struct {
	IsFavorite bool `json:"isFavorite"`
}
