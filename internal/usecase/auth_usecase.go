package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"ecogood/internal/config"
	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

const accessTokenTTL = 15 * time.Minute

// AuthUsecase mints the identities the cart endpoints require.
// Everything beyond register/login belongs to the auth provider.
type AuthUsecase struct {
	cfg   config.Config
	users repo.UserRepository
}

func NewAuthUsecase(cfg config.Config, users repo.UserRepository) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users}
}

type UserDTO struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type AuthTokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (u *AuthUsecase) Register(ctx context.Context, email string, password string) (UserDTO, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(password) < 8 {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// Unique index on email: treat any create failure as a conflict.
		return UserDTO{}, NewHTTPError(http.StatusConflict, "email already registered")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (UserDTO, AuthTokenDTO, error) {
	if email == "" || password == "" {
		return UserDTO{}, AuthTokenDTO{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrUserNotFound) {
		return UserDTO{}, AuthTokenDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return UserDTO{}, AuthTokenDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return UserDTO{}, AuthTokenDTO{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return UserDTO{}, AuthTokenDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	now := time.Now()
	user.LastLoginAt = &now
	_ = u.users.Update(ctx, user)

	token, err := u.issueAccessToken(user, now)
	if err != nil {
		return UserDTO{}, AuthTokenDTO{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return toUserDTO(user), AuthTokenDTO{
		AccessToken: token,
		ExpiresIn:   int(accessTokenTTL.Seconds()),
	}, nil
}

func (u *AuthUsecase) issueAccessToken(user *model.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(u.cfg.JWTSecret))
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}
