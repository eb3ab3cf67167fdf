package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bajas-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func configDePrueba(t *testing.T, codigos ...string) *config.Config {
	t.Helper()

	hashes := make([]string, 0, len(codigos))
	for _, codigo := range codigos {
		hash, err := bcrypt.GenerateFromPassword([]byte(codigo), bcrypt.MinCost)
		require.NoError(t, err)
		hashes = append(hashes, string(hash))
	}

	return &config.Config{
		SecretKey: "clave-de-prueba",
		Auth: config.Auth{
			CodigosSupervisor: hashes,
			DuracionToken:     time.Hour,
		},
	}
}

func TestService_LoginSupervisor(t *testing.T) {
	servicio := NewService(configDePrueba(t, "SUPER2025", "OTRO-CODIGO"))

	token, err := servicio.LoginSupervisor("SUPER2025")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := servicio.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Supervisor)
}

func TestService_LoginSupervisor_CodigoIncorrecto(t *testing.T) {
	servicio := NewService(configDePrueba(t, "SUPER2025"))

	_, err := servicio.LoginSupervisor("INCORRECTO")
	require.Error(t, err)
	assert.True(t, IsCredentialsError(err))
}

func TestService_LoginSupervisor_CodigoVacio(t *testing.T) {
	servicio := NewService(configDePrueba(t, "SUPER2025"))

	_, err := servicio.LoginSupervisor("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestService_LoginSupervisor_SinCodigosConfigurados(t *testing.T) {
	servicio := NewService(configDePrueba(t))

	_, err := servicio.LoginSupervisor("SUPER2025")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCodigoInvalido)
}

func TestService_ValidateToken_TokenAjeno(t *testing.T) {
	servicio := NewService(configDePrueba(t, "SUPER2025"))

	_, err := servicio.ValidateToken("no-es-un-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_Expirado(t *testing.T) {
	cfg := configDePrueba(t, "SUPER2025")
	cfg.Auth.DuracionToken = -time.Hour

	servicio := NewService(cfg)

	token, err := servicio.LoginSupervisor("SUPER2025")
	require.NoError(t, err)

	_, err = servicio.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
