//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}

func osAdviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	// Advisory only; EINVAL from unaligned slices is harmless.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
