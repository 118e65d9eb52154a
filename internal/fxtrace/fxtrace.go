// Package fxtrace provides the minimal leveled-logging seam wilsonburg uses
// to report iteration progress, following the same small-interface,
// swappable-implementation shape as the rest of the module's scratch
// injection points.
package fxtrace

import "fmt"

// Logger receives Wilson–Burg's per-iteration diagnostic traces.
type Logger interface {
	Debugf(format string, args ...any)
}

// noop discards every message. It is the default Logger when the caller
// supplies none.
type noop struct{}

func (noop) Debugf(string, ...any) {}

// NoOp returns a Logger that discards all messages.
func NoOp() Logger { return noop{} }

// PrintfLogger adapts any fmt.Sprintf-compatible target into a Logger by
// writing through the supplied write function (e.g. a *log.Logger's Print,
// or os.Stderr via a small wrapper). It exists so cmd/nshpdemo can route
// Wilson–Burg traces to stderr without wilsonburg importing log itself.
type PrintfLogger struct {
	Write func(string)
}

func (p PrintfLogger) Debugf(format string, args ...any) {
	p.Write(fmt.Sprintf(format, args...))
}
