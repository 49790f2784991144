package usecases

import (
	"errors"
	"fmt"
	"time"

	"apexrenting/internal/entities"
	"apexrenting/internal/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	profiles  interfaces.ProfileStore
	roles     interfaces.RoleStore
	jwtSecret []byte
}

func NewAuthUsecase(profiles interfaces.ProfileStore, roles interfaces.RoleStore, secret string) *AuthUsecase {
	return &AuthUsecase{
		profiles:  profiles,
		roles:     roles,
		jwtSecret: []byte(secret),
	}
}

func (uc *AuthUsecase) Register(email, password, fullName string) error {
	existing, err := uc.profiles.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	profile := &entities.Profile{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hashed),
	}

	return uc.profiles.Create(profile)
}

func (uc *AuthUsecase) Login(email, password string) (string, error) {
	profile, err := uc.profiles.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", errors.New("invalid credentials")
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	// Generate JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": profile.ID,
		"email":   profile.Email,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// EnsureAdmin creates an admin profile if the email is unused, and grants
// the admin role either way (called on startup / by the CLI).
func (uc *AuthUsecase) EnsureAdmin(email, password string) error {
	profile, err := uc.profiles.GetByEmail(email)
	if err != nil {
		return err
	}
	if profile == nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		profile = &entities.Profile{
			Email:        email,
			PasswordHash: string(hashed),
		}
		if err := uc.profiles.Create(profile); err != nil {
			return err
		}
	}
	return uc.roles.Grant(profile.ID, entities.RoleAdmin)
}
