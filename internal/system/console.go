// Package system wraps the console around framebuffer output: KD mode
// switches and cursor visibility on the active virtual terminal.
package system

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rook-computer/avatarmaker/internal/logger"
)

var ErrUnsupported = errors.New("console mode switching is not supported on this platform")

// Prefer /dev/tty (active VT), fallback to /dev/tty0.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

const (
	hideCursorSeq = "\x1b[?25l"
	showCursorSeq = "\x1b[?25h"
)

// HideCursor and ShowCursor toggle the VT cursor with DECTCEM.
func HideCursor() error { return writeVT(hideCursorSeq) }
func ShowCursor() error { return writeVT(showCursorSeq) }

func writeVT(s string) error {
	var errs []error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		err = writeSeq(f, s)
		f.Close()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("write VT failed: %w", errors.Join(errs...))
}

func writeSeq(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// EnterGraphics switches to graphics mode and hides the cursor, logging
// failures instead of returning them. The returned func undoes both.
func EnterGraphics(l logger.Logger) (restore func()) {
	if l == nil {
		l = logger.Noop{}
	}
	logResult(l, "KD_GRAPHICS set", SetGraphicsMode())
	logResult(l, "cursor hidden", HideCursor())
	return func() {
		logResult(l, "cursor shown", ShowCursor())
		logResult(l, "KD_TEXT set", RestoreTextMode())
	}
}

func logResult(l logger.Logger, ok string, err error) {
	if err != nil {
		l.Errorf("tty", "%s failed: %v", ok, err)
		return
	}
	l.Infof("tty", "%s", ok)
}
