// Package clipboard formats recipient lists and writes them to a clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// DefaultDelimiter separates identities in copied text
const DefaultDelimiter = ";"

// ErrUnavailable is returned when no clipboard backend can be used
var ErrUnavailable = errors.New("clipboard unavailable")

// Format joins names with delim. An empty list gives an empty string.
func Format(names []string, delim string) string {
	return strings.Join(names, delim)
}

// Sink receives text destined for a clipboard
type Sink interface {
	Write(text string) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(text string) error

func (f SinkFunc) Write(text string) error { return f(text) }

// SystemSink writes to the OS clipboard
type SystemSink struct{}

func (SystemSink) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// OSC52Sink asks the terminal to set its clipboard with an OSC 52 sequence
type OSC52Sink struct {
	Out  io.Writer
	Tmux bool
}

func (s OSC52Sink) Write(text string) error {
	if s.Out == nil {
		return ErrUnavailable
	}
	seq := osc52.New(text)
	if s.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.Out); err != nil {
		return fmt.Errorf("failed to write osc52 sequence: %w", err)
	}
	return nil
}

// AutoSink tries Primary and falls back to Fallback when it fails
type AutoSink struct {
	Primary  Sink
	Fallback Sink
}

func (s AutoSink) Write(text string) error {
	err := s.Primary.Write(text)
	if err == nil {
		return nil
	}
	log.Printf("clipboard: primary sink failed, falling back: %v", err)
	if ferr := s.Fallback.Write(text); ferr != nil {
		return errors.Join(err, ferr)
	}
	return nil
}

// New builds the sink for mode ("auto", "system" or "osc52").
// out is the terminal the OSC 52 sequence is written to.
func New(mode string, out io.Writer) (Sink, error) {
	osc := OSC52Sink{Out: out, Tmux: os.Getenv("TMUX") != ""}

	switch mode {
	case "", "auto":
		return AutoSink{Primary: SystemSink{}, Fallback: osc}, nil
	case "system":
		return SystemSink{}, nil
	case "osc52":
		return osc, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", mode)
	}
}

// Copy writes names joined by delim to sink
func Copy(sink Sink, names []string, delim string) error {
	if sink == nil {
		return ErrUnavailable
	}
	return sink.Write(Format(names, delim))
}
