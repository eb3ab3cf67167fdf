package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/config"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Los supervisores no tienen cuentas individuales, se identifican con
// códigos de acceso cuyo hash bcrypt vive en la configuración.
type Authenticator interface {
	LoginSupervisor(codigo string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) LoginSupervisor(codigo string) (string, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "El código de acceso es obligatorio")
	}

	if !s.codigoValido(codigo) {
		logrus.Warn("Intento de acceso de supervisor con código incorrecto")
		return "", NewAuthError(ErrCodigoInvalido, apiErrors.ErrCodigoInvalido, "Código de acceso incorrecto")
	}

	token, err := s.generarJWT()
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar el token de autenticación")
	}

	return token, nil
}

func (s *Service) codigoValido(codigo string) bool {
	for _, hash := range s.cfg.Auth.CodigosSupervisor {
		hash = strings.TrimSpace(hash)
		if hash == "" {
			continue
		}

		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(codigo)) == nil {
			return true
		}
	}

	return false
}

func (s *Service) generarJWT() (string, error) {
	duracion := s.cfg.Auth.DuracionToken
	if duracion == 0 {
		duracion = 24 * time.Hour
	}

	claims := domain.Claims{
		Supervisor: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duracion)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
