// Package pty runs one-shot commands under a pseudo-terminal so programs
// that size or colorize their output against a tty behave normally.
package pty

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// Capture runs command through the shell in a PTY of the given size and
// returns everything it wrote until exit. The read error at PTY close is
// expected on Linux and not reported; a non-zero exit is.
func Capture(ctx context.Context, command string, rows, cols uint16) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: rows, Cols: cols})
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, f)
	if err := cmd.Wait(); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}
