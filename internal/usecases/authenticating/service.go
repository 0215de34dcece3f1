package authenticating

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/seller-reports-api/internal/config"
	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenDuration = 24 * time.Hour

type Authenticator interface {
	Login(sellerID, apiKey string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service authenticates the single seller configured for this deployment.
type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg config.Auth) *Service {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) Login(sellerID, apiKey string) (string, error) {
	if !s.cfg.Enabled {
		return "", NewAuthError(ErrAuthDisabled, apiErrors.ErrAuthDisabled, "")
	}

	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" || apiKey == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "")
	}

	if subtle.ConstantTimeCompare([]byte(sellerID), []byte(s.cfg.SellerID)) != 1 {
		return "", NewSellerAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, sellerID, "unknown seller")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.APIKeyHash), []byte(apiKey)); err != nil {
		return "", NewSellerAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, sellerID, "api key mismatch")
	}

	token, err := s.generateJWT()
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "signing token")
	}

	return token, nil
}

func (s *Service) generateJWT() (string, error) {
	duration := s.cfg.TokenDuration
	if duration <= 0 {
		duration = defaultTokenDuration
	}

	now := s.now()
	claims := domain.Claims{
		SellerID:  s.cfg.SellerID,
		StoreName: s.cfg.StoreName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.cfg.SellerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
