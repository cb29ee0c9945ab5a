//go:build windows

// Package stderr is a no-op on Windows, where console handles cannot be
// swapped with dup2.
package stderr

import "os"

func Start(_ func(string)) error {
	return nil
}

func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

func Stop() {}
