package natsio

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/api/resource"
	"github.com/bokol-ooch/temporizadores/pkg/events/natsio/natsiotest"
	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversRecordToSubscribers(t *testing.T) {
	c, err := New(natsiotest.RunServer(t), "")
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, DefaultSubject, c.Subject())

	received := make(chan []byte, 1)
	unsubscribe, err := c.Subscribe(func(data []byte) {
		received <- data
	})
	require.NoError(t, err)
	require.NoError(t, c.Flush())

	m := &model.Record{
		ID:             7,
		Name:           "Alice",
		Shelf:          "A1",
		StartTime:      time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC),
		ElapsedSeconds: 1800,
	}
	require.NoError(t, c.Publish(m))

	select {
	case data := <-received:
		var got resource.RecordResource
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *resource.NewRecord(m), got)
	case <-time.After(5 * time.Second):
		t.Fatal("record event not delivered")
	}

	require.NoError(t, unsubscribe())
}

func TestCustomSubject(t *testing.T) {
	c, err := New(natsiotest.RunServer(t), "estantes.sesiones")
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "estantes.sesiones", c.Subject())
}

func TestNewFailsWithoutServer(t *testing.T) {
	_, err := New("nats://127.0.0.1:1", "")
	assert.Error(t, err)
}
