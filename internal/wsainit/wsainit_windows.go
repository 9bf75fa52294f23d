//go:build windows

// Package wsainit owns the process-wide Winsock subsystem initializer.
// WSAStartup must run once before the first socket is created and
// WSACleanup should run at process exit; we model that as a lazy
// singleton started on first use and never explicitly torn down, the
// same "document that teardown happens at process exit" choice
// original_source/src/net/socket.rs makes with its WSAInit OnceLock.
package wsainit

import (
	"sync"

	"golang.org/x/sys/windows"
)

var (
	once sync.Once
	err  error
)

// Ensure starts the Winsock subsystem if it hasn't been already. Safe to
// call from every socket constructor; the real WSAStartup call happens
// exactly once per process.
func Ensure() error {
	once.Do(func() {
		var data windows.WSAData
		err = windows.WSAStartup(uint32(0x0202), &data) // version 2.2
	})
	return err
}
