// Package guestbook keeps the birthday wishes left by guests on this
// machine.
package guestbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DefaultKey is the storage key of the message list.
const DefaultKey = "birthdayMessages"

// ErrEmptyMessage is returned by Add when the author or the text is blank.
var ErrEmptyMessage = errors.New("guest name and message are required")

// Message is one wish. Samples have no ID; messages left by guests do.
type Message struct {
	ID     string `json:"id,omitempty"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Guest reports whether the message was left by a guest rather than
// shipped as a sample.
func (m Message) Guest() bool { return m.ID != "" }

// Book is the ordered list of messages backed by a Store.
type Book struct {
	store Store
	key   string

	mu       sync.RWMutex
	messages []Message
}

// Open loads the list under key. Missing or unreadable data falls back to
// samples, which are then saved. Open never fails; a failed save is
// logged and the book keeps working in memory.
func Open(store Store, key string, samples []Message) *Book {
	if store == nil {
		store = NewMemoryStore()
	}
	if key == "" {
		key = DefaultKey
	}
	b := &Book{store: store, key: key}

	msgs, err := b.load()
	if err != nil {
		log.Printf("[GuestBook] Warning: %v (using samples)", err)
	}
	if len(msgs) == 0 {
		msgs = append([]Message(nil), samples...)
		b.messages = msgs
		if err := b.save(); err != nil {
			log.Printf("[GuestBook] Warning: %v", err)
		}
		return b
	}
	b.messages = msgs
	return b
}

func (b *Book) load() ([]Message, error) {
	data, err := b.store.Load(b.key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", b.key, err)
	}
	return msgs, nil
}

func (b *Book) save() error {
	data, err := json.Marshal(b.messages)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", b.key, err)
	}
	return b.store.Save(b.key, data)
}

// Add appends a guest's wish and persists the list.
func (b *Book) Add(author, text string) (Message, error) {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)
	if author == "" || text == "" {
		return Message{}, ErrEmptyMessage
	}
	m := Message{ID: uuid.NewString(), Text: text, Author: author}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, m)
	if err := b.save(); err != nil {
		return m, err
	}
	log.Printf("[GuestBook] message from %q saved (%d total)", author, len(b.messages))
	return m, nil
}

// Messages returns a copy in insertion order.
func (b *Book) Messages() []Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Message(nil), b.messages...)
}

// Newest returns up to n messages, newest first, as the board shows them.
func (b *Book) Newest(n int) []Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n <= 0 || n > len(b.messages) {
		n = len(b.messages)
	}
	out := make([]Message, 0, n)
	for i := len(b.messages) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, b.messages[i])
	}
	return out
}

func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.messages)
}
