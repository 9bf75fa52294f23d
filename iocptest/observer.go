package iocptest

import "github.com/windiocp/iocp"

// MockObserver re-exports iocp.MockObserver for callers that only import
// iocptest, mirroring the teacher's testing.go living alongside its
// external-facing MockBackend.
type MockObserver = iocp.MockObserver

// NewMockObserver re-exports iocp.NewMockObserver.
func NewMockObserver() *MockObserver { return iocp.NewMockObserver() }
