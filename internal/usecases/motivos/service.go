package motivos

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
	"github.com/vfg2006/bajas-api/internal/domain"
)

var (
	ErrMotivoNoEncontrado = errors.New("motivo no encontrado")
	ErrNombreVacio        = errors.New("el nombre del motivo es obligatorio")

	// ErrMotivoDuplicado se reexporta para que los handlers no dependan
	// del paquete de repositorios.
	ErrMotivoDuplicado = repository.ErrMotivoDuplicado
)

// Catalog administra el catálogo de motivos de baja. Los motivos nunca
// se eliminan físicamente, solo se desactivan para conservar el
// histórico de reportes que los referencian.
type Catalog interface {
	Listar(ctx context.Context, soloActivos bool) ([]domain.Motivo, error)
	Crear(ctx context.Context, nombre string) (*domain.Motivo, error)
	Renombrar(ctx context.Context, id int, nombre string) error
	Activar(ctx context.Context, id int) error
	Desactivar(ctx context.Context, id int) error
}

type Service struct {
	repo repository.MotivoRepository
}

func NewService(repo repository.MotivoRepository) Catalog {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Listar(ctx context.Context, soloActivos bool) ([]domain.Motivo, error) {
	return s.repo.GetAll(ctx, soloActivos)
}

func (s *Service) Crear(ctx context.Context, nombre string) (*domain.Motivo, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, ErrNombreVacio
	}

	return s.repo.Create(ctx, nombre)
}

func (s *Service) Renombrar(ctx context.Context, id int, nombre string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return ErrNombreVacio
	}

	if err := s.verificarExistencia(ctx, id); err != nil {
		return err
	}

	return s.repo.Rename(ctx, id, nombre)
}

func (s *Service) Activar(ctx context.Context, id int) error {
	if err := s.verificarExistencia(ctx, id); err != nil {
		return err
	}

	return s.repo.SetActivo(ctx, id, true)
}

func (s *Service) Desactivar(ctx context.Context, id int) error {
	if err := s.verificarExistencia(ctx, id); err != nil {
		return err
	}

	return s.repo.SetActivo(ctx, id, false)
}

func (s *Service) verificarExistencia(ctx context.Context, id int) error {
	motivo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if motivo == nil {
		return ErrMotivoNoEncontrado
	}

	return nil
}
