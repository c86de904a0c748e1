//go:build !windows

package infrastructure

import (
	"errors"
	"syscall"
)

func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
