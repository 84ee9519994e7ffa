package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/posta-pra-mim/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, StatusHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "🤖 Bot Posta Pra Mim ativo e rodando!", rec.Body.String())
	assert.Equal(t, constants.StatusMessage, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}
