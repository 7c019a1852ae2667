// Package auth implements demo-only credential checks against the seeded
// account. Registration is intentionally absent; the app ships with one
// demo login.
package auth

import (
	"context"
	"errors"
	"strings"

	"stoxify-backend/internal/domain"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// LoginUser verifies credentials and returns the matching user.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrEmailRequired
	}

	var u domain.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// VerifyUser confirms the session user still exists in the database.
func (s *Service) VerifyUser(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SeedDemoUser creates the demo account if it does not exist yet. Idempotent
// so it can run on every startup.
func (s *Service) SeedDemoUser(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Warn().Msg("demo credentials not configured, skipping seed")
		return nil
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := domain.User{
		Fullname:       "Demo User",
		Email:          email,
		PasswordHash:   string(hash),
		AccountBalance: 10000,
	}
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("seeded demo user")
	return nil
}
