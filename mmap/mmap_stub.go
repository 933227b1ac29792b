//go:build !unix && !windows

package mmap

import (
	"errors"
	"os"
)

func readFile(_ *os.File, _ int64) ([]byte, error) {
	return nil, errors.ErrUnsupported
}

func unmap(_ []byte) error {
	return nil
}
