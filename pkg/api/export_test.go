package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/export"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csvLines(t *testing.T, body string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "ID,Nombre,Estante,Hora Inicio,Hora Fin,Tiempo (seg)", lines[0])
	return lines[1:]
}

func TestExportCSVWithoutFilters(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "Alice", "A1", time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC), 30*time.Minute)
	env.seed(t, "Bob", "B2", time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC), time.Hour)

	rec := env.do(http.MethodGet, "/exportar-csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=registros_filtrados.csv", rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, export.ContentType, rec.Header().Get(echo.HeaderContentType))

	assert.Equal(t, []string{
		`1,Alice,A1,"10/1/2024, 5:00:00 p.m.","10/1/2024, 5:30:00 p.m.",1800`,
		`2,Bob,B2,"11/1/2024, 4:00:00 a.m.","11/1/2024, 5:00:00 a.m.",3600`,
	}, csvLines(t, rec.Body.String()))
}

func TestExportCSVDateRangeCoversWholeDay(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "Alice", "A1", time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC), 30*time.Minute)
	env.seed(t, "Alice", "A1", time.Date(2024, 1, 11, 0, 30, 0, 0, time.UTC), 30*time.Minute)
	env.seed(t, "Alice", "A1", time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC), 30*time.Minute)

	rec := env.do(http.MethodGet, "/exportar-csv?fechaInicio=2024-01-10&fechaFin=2024-01-10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	lines := csvLines(t, rec.Body.String())
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "1,Alice,"))
}

func TestExportCSVLocalDateTimeUsesDisplayTimezone(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "Alice", "A1", time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC), 30*time.Minute)
	env.seed(t, "Bob", "B2", time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC), time.Hour)

	// 20:00 in Mexico City falls on the 11th in UTC.
	rec := env.do(http.MethodGet, "/exportar-csv?fechaInicio=2024-01-10T20:00", "")
	require.Equal(t, http.StatusOK, rec.Code)

	lines := csvLines(t, rec.Body.String())
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "2,Bob,"))
}

func TestExportCSVNameIsExact(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "Alice", "A1", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), time.Minute)
	env.seed(t, "alice", "A1", time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), time.Minute)
	env.seed(t, "Bob", "B2", time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), time.Minute)
	env.seed(t, "Alice", "A3", time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), time.Minute)

	rec := env.do(http.MethodGet, "/exportar-csv?nombre=Alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	lines := csvLines(t, rec.Body.String())
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1,Alice,A1,"))
	assert.True(t, strings.HasPrefix(lines[1], "4,Alice,A3,"))

	rec = env.do(http.MethodGet, "/exportar-csv?nombre=Alice&fechaInicio=2024-01-15", "")
	require.Equal(t, http.StatusOK, rec.Code)
	lines = csvLines(t, rec.Body.String())
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "4,Alice,A3,"))
}

func TestExportCSVEmptyResult(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/exportar-csv?nombre=Nadie", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, csvLines(t, rec.Body.String()))
}

func TestExportCSVMalformedDate(t *testing.T) {
	env := newTestEnv(t)

	for _, q := range []string{"fechaInicio=ayer", "fechaFin=2024-02-30"} {
		rec := env.do(http.MethodGet, "/exportar-csv?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Equal(t, "Fecha inválida", rec.Body.String(), q)
	}
}

func TestExportCSVStorageFailure(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Close())

	rec := env.do(http.MethodGet, "/exportar-csv", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error al generar CSV", rec.Body.String())
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
}
