package bot

// Result is the outcome of an assistant call: either a reply to send or
// an explicit decision to stay silent. The backend's raw sentinel string
// is parsed into this variant at the client boundary so nothing else in
// the codebase compares against the literal.
type Result struct {
	Text   string
	Silent bool
}

// Reply wraps a text the assistant wants sent.
func Reply(text string) Result {
	return Result{Text: text}
}

// NoReply signals that the outbound send must be suppressed.
func NoReply() Result {
	return Result{Silent: true}
}
