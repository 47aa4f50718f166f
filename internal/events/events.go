// Package events publishes platform activity to a message broker so that
// downstream consumers (notification fan-out, moderation tooling) can react
// without coupling to the API layer. Publishing is best-effort: core request
// handling never fails because a broker is down.
package events

import (
	"context"
	"encoding/json"
)

// Channels carrying platform events, one per entity family.
const (
	ChannelGroups   = "mentorhub.groups"
	ChannelMessages = "mentorhub.messages"
	ChannelPosts    = "mentorhub.posts"
)

// Event kinds, attached to every delivery as the "event" attribute.
const (
	KindGroupCreated   = "group.created"
	KindMessageCreated = "message.created"
	KindPostCreated    = "post.created"
)

const kindAttribute = "event"

// Delivery represents a broker-agnostic payload delivered to subscribers.
type Delivery struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

// Handler processes a delivery. Return an error to signal a retry/nack.
type Handler func(ctx context.Context, d Delivery) error

// Backend defines the broker-agnostic operations used by the app.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Subscribe(ctx context.Context, channel string, handler Handler) error
	Close() error
}

// Bus wraps a backend with a stable API.
type Bus struct {
	backend Backend
}

// NewBus constructs a Bus for the provided backend.
func NewBus(backend Backend) *Bus {
	return &Bus{backend: backend}
}

// PublishEvent marshals payload as JSON and publishes it on the named
// channel with the event kind attached as an attribute.
func (b *Bus) PublishEvent(ctx context.Context, channel, kind string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return b.backend.Publish(ctx, channel, data, map[string]string{kindAttribute: kind})
}

// Subscribe consumes deliveries from the named channel.
func (b *Bus) Subscribe(ctx context.Context, channel string, handler Handler) error {
	return b.backend.Subscribe(ctx, channel, handler)
}

// Close closes the underlying backend.
func (b *Bus) Close() error {
	return b.backend.Close()
}

// Kind extracts the event kind from a delivery's attributes.
func (d Delivery) Kind() string {
	return d.Attributes[kindAttribute]
}
