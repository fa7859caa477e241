package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/akasprzok/multiline/internal/charts"
)

// SetupLogging installs a text logger writing to w at the named level.
func SetupLogging(level string, w io.Writer) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	charts.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})))
	return nil
}
