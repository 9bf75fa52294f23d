//go:build !windows

package plat

// Handle stands in for windows.Handle on non-Windows builds.
type Handle uintptr

// InvalidHandle mirrors windows.InvalidHandle's value (^uintptr(0)).
const InvalidHandle = ^Handle(0)
