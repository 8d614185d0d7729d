package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuyve/lsh/core/config"
)

func TestAcceptPassword(t *testing.T) {
	assert.False(t, acceptPassword("", ""), "empty configured password rejects everyone")
	assert.False(t, acceptPassword("", "guess"))
	assert.False(t, acceptPassword("hunter2", "guess"))
	assert.True(t, acceptPassword("hunter2", "hunter2"))
}

func TestNewServer(t *testing.T) {
	cfg := config.Default()
	server, err := NewServer(cfg)
	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewServerMissingHostKey(t *testing.T) {
	cfg := config.Default()
	cfg.SSH.HostKey = "/nonexistent-path-xyz/host_key"

	_, err := NewServer(cfg)
	assert.Error(t, err)
}

func TestSuppressColor(t *testing.T) {
	assert.False(t, SuppressColor(config.ColorAlways, false))
	assert.True(t, SuppressColor(config.ColorNever, true))
	assert.True(t, SuppressColor(config.ColorAuto, false))
	assert.False(t, SuppressColor(config.ColorAuto, true))
}
