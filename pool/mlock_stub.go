//go:build !linux && !windows
// +build !linux,!windows

// File: pool/mlock_stub.go
// Author: momentics <momentics@gmail.com>
//
// Page-locking stub for platforms without mlock support. Pools degrade to
// unlocked arenas; construction still succeeds.

package pool

import "github.com/momentics/hioload-pool/api"

func lockPages([]byte) error {
	return api.NewError(api.ErrCodeNotSupported, "page locking not supported on this platform")
}

func unlockPages([]byte) error {
	return nil
}
