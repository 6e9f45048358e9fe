// Package event defines the lifecycle events the hook can be invoked for.
package event

import "fmt"

// Event identifies the lifecycle moment being signaled.
type Event int

const (
	// InputNeeded signals that the automation host is waiting for user input.
	InputNeeded Event = iota
	// TaskComplete signals that the automation host finished its task.
	TaskComplete
)

// Keywords accepted on the command line.
const (
	KeywordInput    = "input"
	KeywordComplete = "complete"
)

// Parse maps a command-line keyword to an Event.
func Parse(s string) (Event, error) {
	switch s {
	case KeywordInput:
		return InputNeeded, nil
	case KeywordComplete:
		return TaskComplete, nil
	default:
		return 0, fmt.Errorf("unknown event %q (valid events: {input|complete})", s)
	}
}

// String returns the internal name of the event.
func (e Event) String() string {
	switch e {
	case InputNeeded:
		return "input-needed"
	case TaskComplete:
		return "task-complete"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}
