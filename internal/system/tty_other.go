//go:build !linux

package system

import (
	"context"

	"github.com/rook-computer/avatarmaker/internal/logger"
)

func SetGraphicsMode() error { return ErrUnsupported }

func RestoreTextMode() error { return ErrUnsupported }

// WatchKeys is a no-op without evdev.
func WatchKeys(ctx context.Context, l logger.Logger, onKey func()) {}
