package net

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/internal/plat"
)

func TestUDPConnExposesRawHandleAndPort(t *testing.T) {
	c := &UDPConn{handle: plat.InvalidHandle}

	assert.Equal(t, plat.InvalidHandle, c.rawHandle())
	assert.Nil(t, c.rawPort())
}
