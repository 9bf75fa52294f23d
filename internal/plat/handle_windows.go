//go:build windows

package plat

import "golang.org/x/sys/windows"

// Handle is the OS resource handle type threaded through every
// Windows-only package in this module, so callers above the syscall layer
// don't need their own build tags just to name the type.
type Handle = windows.Handle

// InvalidHandle mirrors windows.InvalidHandle.
const InvalidHandle = windows.InvalidHandle
