//go:build windows

package cblock

import "golang.org/x/sys/windows"

// overlapped is an alias, not a copy: on a Windows build ControlBlock's
// header field IS windows.Overlapped, so its address can be passed
// directly to ReadFile/WriteFile/WSASend/CancelIoEx and friends.
type overlapped = windows.Overlapped
