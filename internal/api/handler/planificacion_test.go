package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestMigracionInicialPlanificacion_TablaYaPoblada(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeedReader(ctrl)
	rutas := mocks.NewMockPlanificacionStore(ctrl)
	bitacora := mocks.NewMockSyncBitacora(ctrl)

	rutas.EXPECT().
		Count(gomock.Any()).
		Return(5, nil)

	syncer := syncing.NewService(feed, rutas, bitacora)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/planificacion/migracion-inicial", nil)
	respuesta := httptest.NewRecorder()

	MigracionInicialPlanificacion(syncer)(respuesta, req)

	assert.Equal(t, http.StatusConflict, respuesta.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(respuesta.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrTablaYaPoblada, apiErr.Code)
}
