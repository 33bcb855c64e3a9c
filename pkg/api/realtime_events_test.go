package api

import (
	"bytes"
	"io"
	"testing"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferConn struct {
	bytes.Buffer
	closed bool
}

func (c *bufferConn) Write(p []byte) (int, error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}
	return c.Buffer.Write(p)
}

func (c *bufferConn) Close() error {
	c.closed = true
	return nil
}

func TestEventSinkSendsTextFrames(t *testing.T) {
	conn := &bufferConn{}
	sink := &eventSink{conn: conn}

	sink.send([]byte(`{"id":1}`))

	data, op, err := wsutil.ReadServerData(&conn.Buffer)
	require.NoError(t, err)
	assert.Equal(t, ws.OpText, op)
	assert.Equal(t, `{"id":1}`, string(data))
}

func TestEventSinkDropsEventsAfterClose(t *testing.T) {
	conn := &bufferConn{}
	sink := &eventSink{conn: conn}

	require.NoError(t, sink.close())
	assert.True(t, conn.closed)

	sink.send([]byte(`{"id":2}`))
	assert.Zero(t, conn.Len())
}
