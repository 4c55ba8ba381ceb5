//go:build unit || e2e

package memuow

import (
	"context"
	"slices"
	"sync"
)

type Message struct {
	Topic   string
	Payload []byte
}

// Publisher records published events. Topics listed in Fail are rejected with Err.
type Publisher struct {
	mu       sync.Mutex
	messages []Message
	Fail     map[string]bool
	Err      error
}

func NewPublisher() *Publisher {
	return &Publisher{Fail: map[string]bool{}}
}

func (p *Publisher) Publish(_ context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail[topic] {
		return p.Err
	}
	p.messages = append(p.messages, Message{Topic: topic, Payload: slices.Clone(payload)})
	return nil
}

func (p *Publisher) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.messages)
}
