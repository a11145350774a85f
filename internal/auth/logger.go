package auth

import (
	"fmt"
	"strings"
)

// Logger is the logging seam used across the auth core. Each call takes a
// message followed by alternating key/value pairs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// DefaultLogger returns the fmt backed logger used when none is injected.
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Debug(msg string, kv ...any) { d.print("[DBG]", msg, kv) }
func (d defLogger) Info(msg string, kv ...any)  { d.print("[INF]", msg, kv) }
func (d defLogger) Warn(msg string, kv ...any)  { d.print("[WRN]", msg, kv) }
func (d defLogger) Error(msg string, kv ...any) { d.print("[ERR]", msg, kv) }

func (defLogger) print(level, msg string, kv []any) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(" AUTH ")
	b.WriteString(msg)

	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 != 0 {
		fmt.Fprintf(&b, " %v", kv[len(kv)-1])
	}

	fmt.Println(b.String())
}
