package chat

// Thread is the in-memory message sequence for the active conversation,
// ordered newest first. At most one thread is populated at a time: selecting
// a new conversation replaces it wholesale.
type Thread struct {
	msgs []Message
}

// Prepend inserts a message at the newest end of the sequence. Used for
// optimistic local copies of sent messages and for realtime pushes.
func (t *Thread) Prepend(m Message) {
	t.msgs = append([]Message{m}, t.msgs...)
}

// Replace swaps the whole sequence for a freshly fetched history.
func (t *Thread) Replace(msgs []Message) {
	t.msgs = msgs
}

// Messages returns the sequence, newest first. The returned slice must not
// be mutated by callers.
func (t *Thread) Messages() []Message {
	return t.msgs
}

// Len returns the number of messages in the thread.
func (t *Thread) Len() int {
	return len(t.msgs)
}
