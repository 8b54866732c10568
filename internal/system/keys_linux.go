//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/avatarmaker/internal/logger"
)

// evdevGlob is where WatchKeys looks for input devices.
var evdevGlob = "/dev/input/event*"

// WatchKeys calls onKey once when any key goes down on an evdev device.
// Without readable devices it logs and returns; the caller is then left
// with its other exit paths.
func WatchKeys(ctx context.Context, l logger.Logger, onKey func()) {
	if onKey == nil {
		return
	}
	if l == nil {
		l = logger.Noop{}
	}

	paths, err := filepath.Glob(evdevGlob)
	if err != nil || len(paths) == 0 {
		l.Infof("input", "no evdev devices, key dismiss disabled")
		return
	}

	var once sync.Once
	fire := func(code uint16) {
		once.Do(func() {
			l.Infof("input", "key %d pressed", code)
			onKey()
		})
	}

	tvSize := binary.Size(unix.Timeval{})
	for _, p := range paths {
		go watchDevice(ctx, p, tvSize, fire)
	}
}

func watchDevice(ctx context.Context, path string, tvSize int, fire func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	defer unix.Close(fd)

	buf := make([]byte, 64*eventSize(tvSize))
	for ctx.Err() == nil {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if code, ok := firstKeyDown(buf[:n], tvSize); ok {
			fire(code)
			return
		}
	}
}
