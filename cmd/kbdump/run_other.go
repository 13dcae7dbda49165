//go:build !linux && !freebsd && !netbsd && !openbsd && !windows

package main

import "errors"

func run() error {
	return errors.New("kbdump: unsupported platform")
}
