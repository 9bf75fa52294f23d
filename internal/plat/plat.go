// Package plat holds the single sentinel error every Windows-only package
// in this module returns from its non-Windows build stub, mirroring the
// teacher's kernelopcode_stub.go discipline of failing loudly rather than
// silently compiling a no-op implementation.
package plat

import "errors"

// ErrUnsupportedPlatform is returned by every exported entry point of a
// Windows-only package when built for a GOOS other than windows.
var ErrUnsupportedPlatform = errors.New("iocp: unsupported platform (windows required)")
