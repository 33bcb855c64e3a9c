// Package natsiotest runs an in-process NATS server for tests.
package natsiotest

import (
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/stretchr/testify/require"
)

// RunServer starts a NATS server on a random local port and returns its
// client URL. The server is shut down when the test ends.
func RunServer(t *testing.T) string {
	t.Helper()

	ns, err := server.NewServer(&server.Options{
		ServerName: "temporizadores-test",
		Host:       "127.0.0.1",
		Port:       server.RANDOM_PORT,
		NoLog:      true,
		NoSigs:     true,
	})
	require.NoError(t, err)

	go ns.Start()
	if !ns.ReadyForConnections(10 * time.Second) {
		ns.Shutdown()
		t.Fatal("NATS server not ready within timeout")
	}
	t.Cleanup(ns.Shutdown)

	return ns.ClientURL()
}
