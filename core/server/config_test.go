package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddr(t *testing.T) {
	cfg := Config{Host: "127.0.0.1", Port: "9090"}
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}
