package user

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"ariomuse-backend/internal/domains/composition/model"
)

// ========================================
// AUTH DTOs
// ========================================

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username,omitempty"`
}

func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Username,
			validation.When(r.Username != "", validation.Length(2, 50)),
		),
	)
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse is returned on sign-up and sign-in.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// ========================================
// PROFILE DTOs
// ========================================

// ProfilePatch is an explicit partial update: nil means "keep the stored
// value", a non-nil pointer overwrites it. The merge is shallow; Goals is
// replaced wholesale, never element-merged.
type ProfilePatch struct {
	Username            *string           `json:"username,omitempty"`
	AvatarURL           *string           `json:"avatarUrl,omitempty"`
	PrimaryInstrument   *model.Instrument `json:"primaryInstrument,omitempty"`
	ExperienceLevel     *model.Complexity `json:"experienceLevel,omitempty"`
	Goals               *[]string         `json:"goals,omitempty"`
	OnboardingCompleted *bool             `json:"onboardingCompleted,omitempty"`
	SubscriptionTier    *SubscriptionTier `json:"subscriptionTier,omitempty"`
}

func (p ProfilePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username,
			validation.When(p.Username != nil, validation.Length(2, 50)),
		),
		validation.Field(&p.AvatarURL,
			validation.When(p.AvatarURL != nil && *p.AvatarURL != "", is.URL),
		),
		validation.Field(&p.PrimaryInstrument, validation.By(p.validInstrument)),
		validation.Field(&p.ExperienceLevel, validation.By(p.validExperience)),
		validation.Field(&p.SubscriptionTier, validation.By(p.validTier)),
	)
}

func (p ProfilePatch) validInstrument(interface{}) error {
	if p.PrimaryInstrument != nil && !p.PrimaryInstrument.Valid() {
		return fmt.Errorf("invalid instrument")
	}
	return nil
}

func (p ProfilePatch) validExperience(interface{}) error {
	if p.ExperienceLevel != nil && !p.ExperienceLevel.Valid() {
		return fmt.Errorf("invalid experience level")
	}
	return nil
}

func (p ProfilePatch) validTier(interface{}) error {
	if p.SubscriptionTier != nil && !p.SubscriptionTier.Valid() {
		return fmt.Errorf("invalid subscription tier")
	}
	return nil
}

// Apply merges the patch into the stored record, field by field. ID, email,
// password hash and createdAt are immutable through this path.
func (p ProfilePatch) Apply(u *UserProfile) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.PrimaryInstrument != nil {
		inst := *p.PrimaryInstrument
		u.PrimaryInstrument = &inst
	}
	if p.ExperienceLevel != nil {
		lvl := *p.ExperienceLevel
		u.ExperienceLevel = &lvl
	}
	if p.Goals != nil {
		u.Goals = *p.Goals
	}
	if p.OnboardingCompleted != nil {
		u.OnboardingCompleted = *p.OnboardingCompleted
	}
	if p.SubscriptionTier != nil {
		u.SubscriptionTier = *p.SubscriptionTier
	}
}
