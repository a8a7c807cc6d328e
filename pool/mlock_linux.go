//go:build linux
// +build linux

// File: pool/mlock_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux arena page locking via mlock(2)/munlock(2).

package pool

import "golang.org/x/sys/unix"

func lockPages(view []byte) error {
	return unix.Mlock(view)
}

func unlockPages(view []byte) error {
	return unix.Munlock(view)
}
