package motivos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/internal/usecases/motivos/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Crear(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMotivoRepository(ctrl)

	repo.EXPECT().
		Create(gomock.Any(), "Cierre del local").
		Return(&domain.Motivo{ID: 7, Nombre: "Cierre del local", Activo: true}, nil)

	motivo, err := NewService(repo).Crear(context.Background(), "  Cierre del local  ")
	require.NoError(t, err)
	assert.Equal(t, 7, motivo.ID)
}

func TestService_Crear_NombreVacio(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMotivoRepository(ctrl)

	_, err := NewService(repo).Crear(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNombreVacio)
}

func TestService_Crear_Duplicado(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMotivoRepository(ctrl)

	repo.EXPECT().
		Create(gomock.Any(), "Duplicado").
		Return(nil, ErrMotivoDuplicado)

	_, err := NewService(repo).Crear(context.Background(), "Duplicado")
	assert.ErrorIs(t, err, ErrMotivoDuplicado)
}

func TestService_Renombrar_MotivoInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMotivoRepository(ctrl)

	repo.EXPECT().
		GetByID(gomock.Any(), 99).
		Return(nil, nil)

	err := NewService(repo).Renombrar(context.Background(), 99, "Nuevo nombre")
	assert.ErrorIs(t, err, ErrMotivoNoEncontrado)
}

func TestService_Desactivar(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMotivoRepository(ctrl)

	repo.EXPECT().
		GetByID(gomock.Any(), 3).
		Return(&domain.Motivo{ID: 3, Nombre: "Cambio de dueño", Activo: true}, nil)
	repo.EXPECT().
		SetActivo(gomock.Any(), 3, false).
		Return(nil)

	err := NewService(repo).Desactivar(context.Background(), 3)
	assert.NoError(t, err)
}

func TestService_Activar(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMotivoRepository(ctrl)

	repo.EXPECT().
		GetByID(gomock.Any(), 3).
		Return(&domain.Motivo{ID: 3, Nombre: "Cambio de dueño", Activo: false}, nil)
	repo.EXPECT().
		SetActivo(gomock.Any(), 3, true).
		Return(nil)

	err := NewService(repo).Activar(context.Background(), 3)
	assert.NoError(t, err)
}

func TestService_Listar(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMotivoRepository(ctrl)

	repo.EXPECT().
		GetAll(gomock.Any(), true).
		Return([]domain.Motivo{{ID: 1, Nombre: "Cierre del local", Activo: true}}, nil)

	motivos, err := NewService(repo).Listar(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, motivos, 1)
}
