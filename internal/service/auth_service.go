package service

import (
	"context"
	"errors"
	"time"

	"warungpos/internal/apierror"
	"warungpos/internal/config"
	"warungpos/internal/dto"
	"warungpos/internal/model"
	"warungpos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService implements login, token refresh, and logout.
//
// The refresh token is a signed JWT that is ALSO persisted verbatim on the
// user row. Refresh requires both a valid signature and an exact match with
// the stored value, so rotating (login) or clearing (logout) the column
// revokes every previously issued refresh token.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authService struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("Invalid username or password.")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Invalid username or password.")
	}

	accessToken, err := s.signToken(user, s.cfg.JWTAccessSecret, s.cfg.AccessTokenTTL())
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user, s.cfg.JWTRefreshSecret, s.cfg.RefreshTokenTTL())
	if err != nil {
		return nil, err
	}

	// Rotate the persisted refresh token
	user.RefreshToken = &refreshToken
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         mapUser(user),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Forbidden("Invalid or expired refresh token.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Forbidden("Invalid or expired refresh token.")
	}
	userIDStr, ok := claims["userId"].(string)
	if !ok {
		return nil, apierror.Forbidden("Invalid or expired refresh token.")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apierror.Forbidden("Invalid or expired refresh token.")
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, apierror.Forbidden("Invalid or expired refresh token.")
	}
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		// Rotated away or logged out
		return nil, apierror.Forbidden("Invalid or expired refresh token.")
	}

	accessToken, err := s.signToken(user, s.cfg.JWTAccessSecret, s.cfg.AccessTokenTTL())
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("User")
		}
		return err
	}
	user.RefreshToken = nil
	return s.users.Update(ctx, user)
}

func (s *authService) signToken(user *model.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID.String(),
		"role":   user.Role,
		"exp":    time.Now().Add(ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
