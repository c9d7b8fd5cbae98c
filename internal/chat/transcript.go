// Package chat keeps the message history of a conversation about one book.
package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is a single entry in a Transcript.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SuggestedQuestions are offered before the first question is asked.
var SuggestedQuestions = []string{
	"What makes this book still relevant today?",
	"What are the main themes explored in this book?",
	"Who would you recommend this book to?",
	"What impact did this book have on literature?",
	"How does this book compare to similar works?",
}

// Transcript is an append-only, ordered list of messages. It lives only for
// the current session.
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
	now      func() time.Time
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{now: time.Now}
}

// Append adds a message and returns it with its ID and timestamp filled in.
func (t *Transcript) Append(role Role, content string) Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: t.now(),
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns a copy of all messages in the order they were added.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
