package syncing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func registroFeed(ruta, zona, dia, vendedor string) map[string]string {
	return map[string]string{
		"RUTA":     ruta,
		"ZONA":     zona,
		"DIA":      dia,
		"VENDEDOR": vendedor,
	}
}

func rutaAlmacenada(ruta, zona, dia, vendedor string) domain.PlanificacionRuta {
	return domain.PlanificacionRuta{Ruta: ruta, Zona: zona, Dia: dia, Vendedor: vendedor}
}

func TestService_Reconciliar(t *testing.T) {
	tests := []struct {
		name      string
		registros []map[string]string
		setup     func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora)
		want      Resumen
		wantErr   bool
	}{
		{
			name: "Registro nuevo se inserta",
			registros: []map[string]string{
				registroFeed("R001", "NORTE", "LUNES", "JUAN"),
			},
			setup: func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora) {
				rutas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
				rutas.EXPECT().Create(gomock.Any(), rutaAlmacenada("R001", "NORTE", "LUNES", "JUAN")).Return(nil)
				bitacora.EXPECT().Append(gomock.Any(), bitacoraExitosa(1, 0, 0)).Return(nil)
			},
			want: Resumen{Insertados: 1},
		},
		{
			name: "Registro modificado se actualiza",
			registros: []map[string]string{
				registroFeed("R001", "NORTE", "LUNES", "PEDRO"),
			},
			setup: func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora) {
				rutas.EXPECT().GetAll(gomock.Any()).Return([]domain.PlanificacionRuta{
					rutaAlmacenada("R001", "NORTE", "LUNES", "JUAN"),
				}, nil)
				rutas.EXPECT().Update(gomock.Any(), rutaAlmacenada("R001", "NORTE", "LUNES", "PEDRO")).Return(nil)
				bitacora.EXPECT().Append(gomock.Any(), bitacoraExitosa(0, 1, 0)).Return(nil)
			},
			want: Resumen{Actualizados: 1},
		},
		{
			name: "Registro idéntico no cuenta cambios",
			registros: []map[string]string{
				registroFeed("R001", "NORTE", "LUNES", "JUAN"),
			},
			setup: func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora) {
				rutas.EXPECT().GetAll(gomock.Any()).Return([]domain.PlanificacionRuta{
					rutaAlmacenada("R001", "NORTE", "LUNES", "JUAN"),
				}, nil)
				bitacora.EXPECT().Append(gomock.Any(), bitacoraExitosa(0, 0, 1)).Return(nil)
			},
			want: Resumen{SinCambios: 1},
		},
		{
			name: "Registro sin ruta se omite sin contar",
			registros: []map[string]string{
				registroFeed("", "NORTE", "LUNES", "JUAN"),
				registroFeed("   ", "SUR", "MARTES", "ANA"),
				registroFeed("R002", "SUR", "MARTES", "ANA"),
			},
			setup: func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora) {
				rutas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
				rutas.EXPECT().Create(gomock.Any(), rutaAlmacenada("R002", "SUR", "MARTES", "ANA")).Return(nil)
				bitacora.EXPECT().Append(gomock.Any(), bitacoraExitosa(1, 0, 0)).Return(nil)
			},
			want: Resumen{Insertados: 1},
		},
		{
			name: "Claves en minúsculas y valores con espacios",
			registros: []map[string]string{
				{"ruta": " R003 ", "zona": " ESTE ", "dia": "MIERCOLES", "vendedor": " LUIS "},
			},
			setup: func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora) {
				rutas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
				rutas.EXPECT().Create(gomock.Any(), rutaAlmacenada("R003", "ESTE", "MIERCOLES", "LUIS")).Return(nil)
				bitacora.EXPECT().Append(gomock.Any(), bitacoraExitosa(1, 0, 0)).Return(nil)
			},
			want: Resumen{Insertados: 1},
		},
		{
			name: "Falla consultando la tabla registra bitácora con error",
			registros: []map[string]string{
				registroFeed("R001", "NORTE", "LUNES", "JUAN"),
			},
			setup: func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora) {
				rutas.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("conexión perdida"))
				bitacora.EXPECT().Append(gomock.Any(), gomock.Cond(func(x any) bool {
					e, ok := x.(domain.SyncLog)
					return ok && e.Estado == domain.EstadoSyncError && e.Mensaje != ""
				})).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "Falla en un insert conserva los conteos parciales en la bitácora",
			registros: []map[string]string{
				registroFeed("R001", "NORTE", "LUNES", "JUAN"),
				registroFeed("R002", "SUR", "MARTES", "ANA"),
			},
			setup: func(rutas *mocks.MockPlanificacionStore, bitacora *mocks.MockSyncBitacora) {
				rutas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
				rutas.EXPECT().Create(gomock.Any(), rutaAlmacenada("R001", "NORTE", "LUNES", "JUAN")).Return(nil)
				rutas.EXPECT().Create(gomock.Any(), rutaAlmacenada("R002", "SUR", "MARTES", "ANA")).
					Return(errors.New("clave duplicada"))
				bitacora.EXPECT().Append(gomock.Any(), gomock.Cond(func(x any) bool {
					e, ok := x.(domain.SyncLog)
					return ok && e.Estado == domain.EstadoSyncError && e.Insertados == 1
				})).Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rutas := mocks.NewMockPlanificacionStore(ctrl)
			bitacora := mocks.NewMockSyncBitacora(ctrl)
			tt.setup(rutas, bitacora)

			service := NewService(mocks.NewMockFeedReader(ctrl), rutas, bitacora)
			resumen, err := service.Reconciliar(context.Background(), tt.registros)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, resumen)
		})
	}
}

// Segunda corrida con el mismo feed: todo sin cambios
func TestService_Reconciliar_Idempotencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rutas := mocks.NewMockPlanificacionStore(ctrl)
	bitacora := mocks.NewMockSyncBitacora(ctrl)

	registros := []map[string]string{
		registroFeed("R001", "NORTE", "LUNES", "JUAN"),
		registroFeed("R002", "SUR", "MARTES", "ANA"),
		registroFeed("R003", "ESTE", "MIERCOLES", "LUIS"),
	}

	// Primera corrida sobre tabla vacía: tres inserts
	rutas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	rutas.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	bitacora.EXPECT().Append(gomock.Any(), bitacoraExitosa(3, 0, 0)).Return(nil)

	service := NewService(mocks.NewMockFeedReader(ctrl), rutas, bitacora)
	resumen, err := service.Reconciliar(context.Background(), registros)
	assert.NoError(t, err)
	assert.Equal(t, Resumen{Insertados: 3}, resumen)

	// Segunda corrida: la tabla ya refleja el feed
	rutas.EXPECT().GetAll(gomock.Any()).Return([]domain.PlanificacionRuta{
		rutaAlmacenada("R001", "NORTE", "LUNES", "JUAN"),
		rutaAlmacenada("R002", "SUR", "MARTES", "ANA"),
		rutaAlmacenada("R003", "ESTE", "MIERCOLES", "LUIS"),
	}, nil)
	bitacora.EXPECT().Append(gomock.Any(), bitacoraExitosa(0, 0, 3)).Return(nil)

	resumen, err = service.Reconciliar(context.Background(), registros)
	assert.NoError(t, err)
	assert.Equal(t, Resumen{SinCambios: 3}, resumen)
}

func TestService_Sincronizar_FeedInalcanzable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockFeedReader(ctrl)
	rutas := mocks.NewMockPlanificacionStore(ctrl)
	bitacora := mocks.NewMockSyncBitacora(ctrl)

	feed.EXPECT().Leer(gomock.Any()).Return(nil, errors.New("sheet no disponible"))
	bitacora.EXPECT().Append(gomock.Any(), gomock.Cond(func(x any) bool {
		e, ok := x.(domain.SyncLog)
		return ok && e.Estado == domain.EstadoSyncError && e.TipoSync == domain.TipoSyncActualizacion
	})).Return(nil)

	service := NewService(feed, rutas, bitacora)
	_, err := service.Sincronizar(context.Background())
	assert.Error(t, err)
}

func TestService_MigracionInicial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockFeedReader(ctrl)
	rutas := mocks.NewMockPlanificacionStore(ctrl)
	bitacora := mocks.NewMockSyncBitacora(ctrl)

	rutas.EXPECT().Count(gomock.Any()).Return(0, nil)
	feed.EXPECT().Leer(gomock.Any()).Return([]map[string]string{
		registroFeed("R001", "NORTE", "LUNES", "JUAN"),
		registroFeed("", "SIN RUTA", "LUNES", "NADIE"),
		registroFeed("R002", "SUR", "MARTES", "ANA"),
	}, nil)
	rutas.EXPECT().InsertBatch(gomock.Any(), gomock.Len(2)).Return(2, nil)
	bitacora.EXPECT().Append(gomock.Any(), gomock.Cond(func(x any) bool {
		e, ok := x.(domain.SyncLog)
		return ok && e.TipoSync == domain.TipoSyncInicial && e.Estado == domain.EstadoSyncExito && e.Insertados == 2
	})).Return(nil)

	service := NewService(feed, rutas, bitacora)
	insertados, err := service.MigracionInicial(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, insertados)
}

func TestService_MigracionInicial_TablaYaPoblada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockFeedReader(ctrl)
	rutas := mocks.NewMockPlanificacionStore(ctrl)
	bitacora := mocks.NewMockSyncBitacora(ctrl)

	// Guardián de idempotencia: no se lee el feed ni se inserta nada
	rutas.EXPECT().Count(gomock.Any()).Return(842, nil)

	service := NewService(feed, rutas, bitacora)
	_, err := service.MigracionInicial(context.Background())
	assert.ErrorIs(t, err, ErrYaPoblada)
}

func bitacoraExitosa(insertados, actualizados, sinCambios int) domain.SyncLog {
	return domain.SyncLog{
		TipoSync:     domain.TipoSyncActualizacion,
		Insertados:   insertados,
		Actualizados: actualizados,
		SinCambios:   sinCambios,
		Estado:       domain.EstadoSyncExito,
	}
}
