package user

import (
	"time"

	"github.com/google/uuid"

	"ariomuse-backend/internal/domains/composition/model"
)

type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

func (t SubscriptionTier) Valid() bool {
	return t == TierFree || t == TierPro
}

// UserProfile is the persisted user record. PasswordHash is part of the
// stored JSON but never leaves the service layer: handlers only ever see
// the DTO.
type UserProfile struct {
	ID                  uuid.UUID         `json:"id"`
	Email               string            `json:"email"`
	PasswordHash        string            `json:"passwordHash"`
	Username            string            `json:"username"`
	AvatarURL           string            `json:"avatarUrl,omitempty"`
	PrimaryInstrument   *model.Instrument `json:"primaryInstrument,omitempty"`
	ExperienceLevel     *model.Complexity `json:"experienceLevel,omitempty"`
	Goals               []string          `json:"goals,omitempty"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
	SubscriptionTier    SubscriptionTier  `json:"subscriptionTier"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// UserDTO is the public user representation, safe to expose.
type UserDTO struct {
	ID                  uuid.UUID         `json:"id"`
	Email               string            `json:"email"`
	Username            string            `json:"username"`
	AvatarURL           string            `json:"avatarUrl,omitempty"`
	PrimaryInstrument   *model.Instrument `json:"primaryInstrument,omitempty"`
	ExperienceLevel     *model.Complexity `json:"experienceLevel,omitempty"`
	Goals               []string          `json:"goals,omitempty"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
	SubscriptionTier    SubscriptionTier  `json:"subscriptionTier"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// ToDTO strips credentials from the stored record.
func (u *UserProfile) ToDTO() UserDTO {
	return UserDTO{
		ID:                  u.ID,
		Email:               u.Email,
		Username:            u.Username,
		AvatarURL:           u.AvatarURL,
		PrimaryInstrument:   u.PrimaryInstrument,
		ExperienceLevel:     u.ExperienceLevel,
		Goals:               u.Goals,
		OnboardingCompleted: u.OnboardingCompleted,
		SubscriptionTier:    u.SubscriptionTier,
		CreatedAt:           u.CreatedAt,
	}
}
