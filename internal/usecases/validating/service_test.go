package validating

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/internal/usecases/validating/mocks"
	"go.uber.org/mock/gomock"
)

// Fecha de referencia de los tests: 1 de mayo de 2025
var hoy = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

func nuevoServicioTest(store DataStore) *Service {
	return &Service{
		store: store,
		hoy:   func() time.Time { return hoy },
	}
}

func clienteDePrueba() *domain.Cliente {
	return &domain.Cliente{
		Codigo: "420568",
		Nombre: "TIENDA DOÑA MARTA",
		Ruta:   "R014",
		Zona:   "NORTE",
		Activo: true,
	}
}

func planificacionDePrueba() *domain.PlanificacionRuta {
	return &domain.PlanificacionRuta{
		Ruta:     "R014",
		Zona:     "ZONA NORTE",
		Dia:      "LUNES",
		Vendedor: "JUAN PEREZ",
	}
}

func ventaHace(dias int) domain.Venta {
	return domain.Venta{
		CodigoCliente: "420568",
		NombreCliente: "TIENDA DOÑA MARTA",
		FechaRaw:      hoy.AddDate(0, 0, -dias).Format(time.DateOnly),
	}
}

func TestService_Validar(t *testing.T) {
	tests := []struct {
		name     string
		codigo   string
		motivo   string
		setup    func(store *mocks.MockDataStore)
		validate func(t *testing.T, decision domain.Decision)
	}{
		{
			name:   "Cliente desconocido - rechazado con nombre centinela",
			codigo: "999999999",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "999999999").Return(nil, nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "999999999").Return(nil, nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoRechazado, decision.Resultado)
				assert.Equal(t, domain.NombreClienteNoEncontrado, decision.NombreCliente)
				assert.Contains(t, decision.Razon, "999999999")
				assert.Empty(t, decision.Zona)
				assert.Empty(t, decision.Vendedor)
			},
		},
		{
			name:   "Cliente sin ventas registradas - aprobado",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoAprobado, decision.Resultado)
				assert.Equal(t, "No tiene ventas registradas", decision.Razon)
				assert.Equal(t, "ZONA NORTE", decision.Zona)
				assert.Equal(t, "R014", decision.Ruta)
				assert.Equal(t, "JUAN PEREZ", decision.Vendedor)
			},
		},
		{
			name:   "Ventas existentes pero ninguna fecha válida - aprobado",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{
					{CodigoCliente: "420568", FechaRaw: "garbage"},
					{CodigoCliente: "420568", FechaRaw: nil},
					{CodigoCliente: "420568", FechaRaw: 120}, // serial implausible
				}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoAprobado, decision.Resultado)
				assert.Equal(t, "No tiene ventas con fechas válidas", decision.Razon)
			},
		},
		{
			name:   "Última venta hace 91 días - aprobado (límite es estrictamente mayor a 90)",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(91)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoAprobado, decision.Resultado)
				assert.Contains(t, decision.Razon, "91 días")
				assert.Contains(t, decision.Razon, "30-01-2025")
			},
		},
		{
			name:   "Última venta hace exactamente 90 días - rechazado",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(90)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoRechazado, decision.Resultado)
				assert.Contains(t, decision.Razon, "90 días")
			},
		},
		{
			name:   "Duplicado con ventas recientes - revisión manual",
			codigo: "420568",
			motivo: "Duplicado",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(90)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoRevisionManual, decision.Resultado)
				assert.Contains(t, decision.Razon, "Inteligencia Comercial")
				assert.Contains(t, decision.Razon, "90 días")
			},
		},
		{
			name:   "Duplicado en mayúsculas con ventas recientes - revisión manual",
			codigo: "420568",
			motivo: "DUPLICADO CLIENTE",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(30)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoRevisionManual, decision.Resultado)
			},
		},
		{
			name:   "Duplicado como substring con ventas recientes - revisión manual",
			codigo: "420568",
			motivo: "es un duplicado",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(30)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoRevisionManual, decision.Resultado)
			},
		},
		{
			name:   "Duplicado con ventas antiguas - aprobado (la antigüedad gana)",
			codigo: "420568",
			motivo: "Duplicado",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(120)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoAprobado, decision.Resultado)
				assert.Contains(t, decision.Razon, "120 días")
			},
		},
		{
			name:   "Venta de hoy - rechazado con 0 días",
			codigo: "420568",
			motivo: "Cambio de Dueño",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(0)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoRechazado, decision.Resultado)
				assert.Contains(t, decision.Razon, "0 días")
			},
		},
		{
			name:   "La venta más reciente gana entre varias",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{
					ventaHace(200),
					ventaHace(30),
					ventaHace(150),
					{CodigoCliente: "420568", FechaRaw: "basura"},
				}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoRechazado, decision.Resultado)
				assert.Contains(t, decision.Razon, "30 días")
			},
		},
		{
			name:   "Venta con fecha futura - error por datos inconsistentes",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(-10)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoError, decision.Resultado)
				assert.Contains(t, decision.Razon, "fechas de ventas")
			},
		},
		{
			name:   "Falla consultando el cliente - error, nunca pánico",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").
					Return(nil, errors.New("conexión rechazada"))
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoError, decision.Resultado)
				assert.Contains(t, decision.Razon, "conexión rechazada")
			},
		},
		{
			name:   "Falla consultando ventas - error",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").
					Return(nil, errors.New("timeout de la base de datos"))
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoError, decision.Resultado)
			},
		},
		{
			name:   "Falla consultando planificación - error",
			codigo: "420568",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{ventaHace(30)}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").
					Return(nil, errors.New("tabla no disponible"))
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoError, decision.Resultado)
			},
		},
		{
			name:   "Código con espacios se recorta antes de consultar",
			codigo: "  420568  ",
			motivo: "Cerró el negocio",
			setup: func(store *mocks.MockDataStore) {
				store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").Return(clienteDePrueba(), nil)
				store.EXPECT().GetVentasByCliente(gomock.Any(), "420568").Return([]domain.Venta{}, nil)
				store.EXPECT().GetPlanificacionByRuta(gomock.Any(), "R014").Return(planificacionDePrueba(), nil)
			},
			validate: func(t *testing.T, decision domain.Decision) {
				assert.Equal(t, domain.ResultadoAprobado, decision.Resultado)
				assert.Equal(t, "420568", decision.CodigoCliente)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockDataStore(ctrl)
			tt.setup(store)

			decision := nuevoServicioTest(store).Validar(context.Background(), tt.codigo, tt.motivo)

			assert.Equal(t, tt.motivo, decision.Motivo)
			tt.validate(t, decision)
		})
	}
}

func TestService_Validar_RecuperaDePanico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDataStore(ctrl)
	store.EXPECT().GetClienteByCodigo(gomock.Any(), "420568").
		DoAndReturn(func(context.Context, string) (*domain.Cliente, error) {
			panic("falla interna del adaptador")
		})

	assert.NotPanics(t, func() {
		decision := nuevoServicioTest(store).Validar(context.Background(), "420568", "Duplicado")
		assert.Equal(t, domain.ResultadoError, decision.Resultado)
		assert.Contains(t, decision.Razon, "falla interna del adaptador")
	})
}
