package services

import (
	"context"

	"github.com/mentorhub/apiserver/internal/events"
	"github.com/rs/zerolog/log"
)

// publishEvent emits a platform event without affecting the caller's
// outcome: broker failures are logged and swallowed. A nil bus disables
// publishing entirely.
func publishEvent(ctx context.Context, bus *events.Bus, channel, kind string, payload any) {
	if bus == nil {
		return
	}
	if _, err := bus.PublishEvent(ctx, channel, kind, payload); err != nil {
		log.Warn().Err(err).Str("channel", channel).Str("event", kind).Msg("event publish failed")
	}
}
