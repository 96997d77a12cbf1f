package replacet

import (
	"fmt"
	"log/slog"

	"github.com/wvell/replacet/syntax"
)

// Diagnostic is a failure tied to a location in the transformed module.
type Diagnostic struct {
	// Err wraps one of the package's sentinel errors.
	Err     error
	Message string
	File    string
	Pos     syntax.Position
}

func (d Diagnostic) Error() string {
	switch {
	case d.File != "" && d.Pos.IsValid():
		return fmt.Sprintf("%s:%s: %s", d.File, d.Pos, d.Message)
	case d.Pos.IsValid():
		return fmt.Sprintf("%s: %s", d.Pos, d.Message)
	default:
		return d.Message
	}
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Sink receives diagnostics while a module is transformed.
type Sink interface {
	Report(d Diagnostic)
}

// PanicSink stops the transform at the first diagnostic by panicking with it.
// It is meant for tests and verification runs that assert exact failure conditions.
type PanicSink struct{}

func (PanicSink) Report(d Diagnostic) {
	panic(d)
}

// Collector records diagnostics and lets the transform continue.
type Collector struct {
	Diagnostics []Diagnostic
	// Logger, when set, receives every diagnostic at warn level.
	Logger *slog.Logger
}

// NewCollector returns a collector logging to logger. A nil logger disables logging.
func NewCollector(logger *slog.Logger) *Collector {
	return &Collector{Logger: logger}
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)

	if c.Logger != nil {
		c.Logger.Warn(d.Message, "file", d.File, "pos", d.Pos.String(), "err", d.Err)
	}
}

// Err returns the first recorded diagnostic, or nil.
func (c *Collector) Err() error {
	if len(c.Diagnostics) == 0 {
		return nil
	}

	return c.Diagnostics[0]
}
