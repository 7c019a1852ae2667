// Package user manages account profiles and the per-user provider API key.
package user

import (
	"context"
	"errors"
	"strings"

	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("User not found")
	ErrInvalidAPIKey = errors.New("API key must be 16 uppercase letters or digits")
	ErrInvalidEmail  = errors.New("Invalid email address")
)

type Service struct {
	DB *gorm.DB
}

// UpdateInput carries optional profile fields. Nil means leave unchanged.
type UpdateInput struct {
	Fullname *string `json:"fullname"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
}

// Profile is the client-facing account shape. HasAPIKey replaces the key
// itself; the raw key never leaves the server.
type Profile struct {
	UserID         uuid.UUID `json:"user_id"`
	Fullname       string    `json:"fullname"`
	Email          string    `json:"email"`
	Avatar         string    `json:"avatar,omitempty"`
	AccountBalance float64   `json:"accountBalance"`
	JoinedDate     string    `json:"joinedDate"`
	HasAPIKey      bool      `json:"hasApiKey"`
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfile(u), nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, in UpdateInput) (*Profile, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Fullname != nil {
		if name := strings.TrimSpace(*in.Fullname); name != "" {
			updates["fullname"] = name
		}
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !validation.IsValidEmail(email) {
			return nil, ErrInvalidEmail
		}
		updates["email"] = email
	}
	if in.Avatar != nil {
		updates["avatar"] = strings.TrimSpace(*in.Avatar)
	}
	if len(updates) == 0 {
		return toProfile(u), nil
	}

	if err := s.DB.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// SetAPIKey stores a validated provider key on the user row.
func (s *Service) SetAPIKey(ctx context.Context, userID uuid.UUID, key string) (*Profile, error) {
	key = strings.TrimSpace(key)
	if !validation.IsValidAPIKey(key) {
		return nil, ErrInvalidAPIKey
	}
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(u).Update("api_key", key).Error; err != nil {
		return nil, err
	}
	u.APIKey = key
	return toProfile(u), nil
}

// RemoveAPIKey clears the stored key; the user falls back to demo data.
func (s *Service) RemoveAPIKey(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(u).Update("api_key", "").Error; err != nil {
		return nil, err
	}
	u.APIKey = ""
	return toProfile(u), nil
}

// APIKey returns the user's stored provider key ("" if none).
func (s *Service) APIKey(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.APIKey, nil
}

func (s *Service) find(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func toProfile(u *domain.User) *Profile {
	return &Profile{
		UserID:         u.UserID,
		Fullname:       u.Fullname,
		Email:          u.Email,
		Avatar:         u.Avatar,
		AccountBalance: u.AccountBalance,
		JoinedDate:     u.JoinedDate.Format("2006-01-02"),
		HasAPIKey:      u.APIKey != "",
	}
}
