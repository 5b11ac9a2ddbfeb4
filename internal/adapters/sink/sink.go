package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"

	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

var (
	_ ports.PayloadSink = (*Log)(nil)
	_ ports.PayloadSink = (*Writer)(nil)
	_ ports.PayloadSink = (*Clipboard)(nil)
	_ ports.PayloadSink = Multi(nil)
)

// Log records submitted payloads as structured log entries
type Log struct {
	logger *slog.Logger
}

// NewLog creates a log sink; a nil logger uses slog.Default()
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

// Submit logs the payload
func (l *Log) Submit(ctx context.Context, p domain.Payload) error {
	l.logger.InfoContext(ctx, "tax submitted",
		"name", p.Name,
		"rate", p.Rate,
		"applied_to", p.AppliedTo,
		"applicable_items", p.ApplicableItems,
	)
	return nil
}

// Writer encodes payloads as indented JSON
type Writer struct {
	w io.Writer
}

// NewWriter creates a sink writing to w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Submit writes the payload followed by a newline
func (s *Writer) Submit(_ context.Context, p domain.Payload) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Clipboard copies payloads to the system clipboard as JSON
type Clipboard struct {
	write func(string) error
}

// NewClipboard creates a clipboard sink
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility was found
func (c *Clipboard) Available() bool {
	return !clipboard.Unsupported
}

// Submit copies the payload
func (c *Clipboard) Submit(_ context.Context, p domain.Payload) error {
	text, err := Encode(p)
	if err != nil {
		return err
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Multi fans a payload out to several sinks. Every sink is tried;
// failures are joined.
type Multi []ports.PayloadSink

// Submit forwards the payload to every sink
func (m Multi) Submit(ctx context.Context, p domain.Payload) error {
	var errs []error
	for _, s := range m {
		if err := s.Submit(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Encode renders a payload as indented JSON
func Encode(p domain.Payload) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
