package gateway

import "github.com/sells-group/xbrl-cli/pkg/firecrawl"

// State is the lifecycle of a single fetch invocation.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Result is the outcome of a fetch: either content or a failure message,
// never both.
type Result struct {
	content *firecrawl.Document
	message string
}

// Success wraps scraped content.
func Success(doc firecrawl.Document) Result {
	return Result{content: &doc}
}

// Failure wraps an error message.
func Failure(message string) Result {
	return Result{message: message}
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool { return r.content != nil }

// Content returns the scraped document; ok is false for a failure.
func (r Result) Content() (firecrawl.Document, bool) {
	if r.content == nil {
		return firecrawl.Document{}, false
	}
	return *r.content, true
}

// Message returns the failure message, or "" for a success.
func (r Result) Message() string {
	if r.OK() {
		return ""
	}
	return r.message
}

// State returns the terminal state the fetch ended in.
func (r Result) State() State {
	if r.OK() {
		return StateSucceeded
	}
	return StateFailed
}
