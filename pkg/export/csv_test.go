package export

import (
	"errors"
	"testing"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	out, err := Render(nil, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "ID,Nombre,Estante,Hora Inicio,Hora Fin,Tiempo (seg)\n", string(out))
}

func TestRenderLocalizesTimestamps(t *testing.T) {
	loc, err := timestamp.LoadLocation(timestamp.DefaultDisplayTimezone)
	require.NoError(t, err)

	records := []model.Record{
		{
			ID:             1,
			Name:           "Alice",
			Shelf:          "A1",
			StartTime:      time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC),
			ElapsedSeconds: 1800,
		},
		{
			ID:             2,
			Name:           `Bob "B", Jr.`,
			Shelf:          "B2",
			StartTime:      time.Date(2024, 1, 11, 15, 4, 5, 0, time.UTC),
			EndTime:        time.Date(2024, 1, 11, 15, 5, 5, 0, time.UTC),
			ElapsedSeconds: 0,
		},
	}

	out, err := Render(records, loc)
	require.NoError(t, err)
	assert.Equal(t,
		"ID,Nombre,Estante,Hora Inicio,Hora Fin,Tiempo (seg)\n"+
			"1,Alice,A1,\"10/1/2024, 5:00:00 p.m.\",\"10/1/2024, 5:30:00 p.m.\",1800\n"+
			"2,\"Bob \"\"B\"\", Jr.\",B2,\"11/1/2024, 9:04:05 a.m.\",\"11/1/2024, 9:05:05 a.m.\",0\n",
		string(out))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportsWriterErrors(t *testing.T) {
	err := Write(failingWriter{}, []model.Record{{ID: 1}}, time.UTC)
	assert.Error(t, err)
}
