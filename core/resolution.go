package core

// Source identifies which resolver step produced a response. It is attached
// to every Resolution so callers can show provenance (and so reward records
// can be interpreted later).
type Source string

const (
	// SourceMemory marks answers recalled from the taught long-term memory.
	SourceMemory Source = "memory"
	// SourceSystem marks answers produced by the system command handler.
	SourceSystem Source = "system"
	// SourceSearch marks answers produced by the web search collaborator.
	SourceSearch Source = "search"
	// SourcePolicy marks best-guess answers predicted by the trained policy.
	SourcePolicy Source = "policy"
	// SourceTaught marks the acknowledgement produced when the user teaches
	// a new answer at the end of the chain.
	SourceTaught Source = "taught"
)

// Resolution is the terminal result of running an utterance through the
// resolver chain.
type Resolution struct {
	// Input is the original utterance as received (before alias
	// normalization). Interaction records are keyed by this value.
	Input string
	// Text is the response shown to the user.
	Text string
	// Source tags the resolver step that produced Text.
	Source Source
}

// Display returns the response text decorated for provenance-aware UIs.
// Policy predictions carry an "(rl)" suffix so users can tell a learned
// guess from an authoritative answer; all other sources return Text as-is.
func (r Resolution) Display() string {
	if r.Source == SourcePolicy {
		return r.Text + " (rl)"
	}
	return r.Text
}
