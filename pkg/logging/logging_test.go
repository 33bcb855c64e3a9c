package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	c, err := Configure(Options{Level: "debug"})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestConfigureInvalidLevel(t *testing.T) {
	_, err := Configure(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestConfigureFile(t *testing.T) {
	defer logrus.SetOutput(os.Stdout)

	path := filepath.Join(t.TempDir(), "log", "temporizadores.log")
	c, err := Configure(Options{File: path})
	require.NoError(t, err)

	logrus.Info("Record saved")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Record saved")
}
