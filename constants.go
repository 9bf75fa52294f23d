package iocp

import (
	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/constants"
)

// Re-exported tuning constants, so callers don't need to import
// internal/constants directly.
const (
	DefaultMaxConcurrency   = constants.DefaultMaxConcurrency
	DefaultMaxIOSize        = constants.DefaultMaxIOSize
	DefaultReadBufferSize   = constants.DefaultReadBufferSize
	DefaultBacklog          = constants.DefaultBacklog
	PipeConnectRetryDelay   = constants.PipeConnectRetryDelay
	PipeConnectRetryLimit   = constants.PipeConnectRetryLimit
	ConnectRetryDelay       = constants.ConnectRetryDelay
	VectoredSegmentSizeHint = constants.VectoredSegmentSizeHint
)

// MaxAddrSize is the largest encoded socket address this runtime ever
// needs to buffer for (AcceptEx's address pair, WSARecvFrom's from-addr).
const MaxAddrSize = addr.MaxSockAddrSize
