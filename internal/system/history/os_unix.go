// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import (
	"os"

	"golang.org/x/sys/unix"
)

// History may contain anything typed at the prompt so keep it private.
func create(name string) (*os.File, error) {
	mask := unix.Umask(0o077)
	defer unix.Umask(mask)

	return os.Create(name)
}
