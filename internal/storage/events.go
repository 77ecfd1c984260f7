package storage

import "time"

// ToolCallEvent is the audit record emitted for every tool invocation,
// whatever its outcome.
type ToolCallEvent struct {
	RequestID  string
	Timestamp  time.Time
	ToolName   string
	Service    string
	Kind       string
	Status     string
	ErrorKind  string
	DurationMs float32
	Transport  string
}

// EventWriter sinks tool call events. Write() must NEVER block the caller:
// implementations drop events rather than stall a tool call.
type EventWriter interface {
	Write(event *ToolCallEvent)
	Close()
}
