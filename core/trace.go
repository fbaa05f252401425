package core

// TraceWriter is a function type for writing trace messages.
type TraceWriter func(string)

var (
	// traceWrite is the global trace sink (platform code may point it
	// at semihosting println, RTT, etc.). No-op by default.
	traceWrite TraceWriter = func(string) {}

	// traceEnabled gates tracing; off by default since even a cheap
	// call is unwelcome in interrupt context.
	traceEnabled bool
)

// SetTraceWriter sets the platform-specific trace output function.
func SetTraceWriter(w TraceWriter) {
	traceWrite = w
}

// SetTraceEnabled enables or disables trace output.
func SetTraceEnabled(enabled bool) {
	traceEnabled = enabled
}

// traceEvent emits a constant-string event marker. Callers pass only
// untyped string constants so no formatting or allocation happens on
// the interrupt path.
func traceEvent(msg string) {
	if traceEnabled {
		traceWrite(msg)
	}
}
