//go:build windows
// +build windows

// File: pool/mlock_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows arena page locking via VirtualLock/VirtualUnlock.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func lockPages(view []byte) error {
	return windows.VirtualLock(uintptr(unsafe.Pointer(&view[0])), uintptr(len(view)))
}

func unlockPages(view []byte) error {
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&view[0])), uintptr(len(view)))
}
