package constants

import "time"

// Default configuration constants
const (
	// DefaultMaxConcurrency is the default number of concurrent threads a
	// completion port lets run GetQueuedCompletionStatus at once; 0 lets
	// the kernel default to the number of processors.
	DefaultMaxConcurrency = 0

	// DefaultMaxIOSize is a suggested ceiling on a single Recv/Send/ReadAt/
	// WriteAt buffer's length (1MB). No code in this module enforces it.
	DefaultMaxIOSize = 1 << 20

	// DefaultReadBufferSize is the default size for a stream or pipe read
	// buffer when the caller doesn't specify one (64KB).
	DefaultReadBufferSize = 64 * 1024

	// DefaultBacklog is a listen backlog value. ListenTCP and ListenUnix do
	// not read it; they listen with windows.SOMAXCONN.
	DefaultBacklog = 128
)

// Timing constants for connection and pipe-instance setup.
//
// CreateNamedPipe and ConnectEx both have failure modes that are
// transient under load: a racing client can see ERROR_PIPE_BUSY before a
// server instance is ready, and a freshly bound socket can reject a
// connect attempt issued before its own setup has settled. These
// constants are backoff values for retrying those cases. Nothing in this
// module reads them: DialPipe and DialTCP make a single attempt and return
// its error.
const (
	// PipeConnectRetryDelay is how long to wait before retrying a named
	// pipe connect that failed with ERROR_PIPE_BUSY.
	PipeConnectRetryDelay = 20 * time.Millisecond

	// PipeConnectRetryLimit bounds how many times a pipe connect retries
	// before giving up and returning the last error.
	PipeConnectRetryLimit = 10

	// ConnectRetryDelay is the backoff between ConnectEx retries after a
	// transient failure on a freshly bound socket.
	ConnectRetryDelay = 10 * time.Millisecond
)

// Memory allocation constants.
const (
	// VectoredSegmentSizeHint is the suggested per-segment size when
	// splitting a large transfer across a VectoredBuffer's WSABuf array
	// (64KB, matching Windows' own internal scatter-gather granularity).
	VectoredSegmentSizeHint = 64 * 1024
)
