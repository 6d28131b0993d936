package workers

import (
	"context"
	"dynamic-voice/contract"
	"log/slog"
	"time"
)

// Dispatcher is the single consumer of platform events. Handlers therefore run one at a time,
// in delivery order, which is what lets the registry go without locks.
type Dispatcher struct {
	log        *slog.Logger
	events     <-chan contract.Event
	membership contract.MembershipHandler
	components contract.InteractionHandler
	commands   contract.InteractionHandler
}

// NewDispatcher routes slash commands to commands and every other interaction to components.
func NewDispatcher(
	log *slog.Logger,
	events <-chan contract.Event,
	membership contract.MembershipHandler,
	components contract.InteractionHandler,
	commands contract.InteractionHandler,
) *Dispatcher {
	return &Dispatcher{
		log:        log,
		events:     events,
		membership: membership,
		components: components,
		commands:   commands,
	}
}

func (w *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping dispatcher")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event channel is closed")
				return nil
			}
			w.dispatch(ctx, evt)
		}
	}
}

// dispatch isolates each event: a panicking handler loses its event, not the loop.
func (w *Dispatcher) dispatch(ctx context.Context, evt contract.Event) {
	log := w.log.With("event_id", evt.ID.String())
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error("Event handler panicked", "panic", r)
		}
	}()

	switch evt.Kind {
	case contract.VoiceStateEvent:
		w.membership.OnMembershipEvent(ctx, evt.VoiceState)
	case contract.InteractionCreateEvent:
		if evt.Interaction.Interaction.Command != nil {
			w.commands.OnInteraction(ctx, evt.Interaction)
		} else {
			w.components.OnInteraction(ctx, evt.Interaction)
		}
	default:
		log.Warn("Unknown event kind dropped", "kind", evt.Kind)
		return
	}
	log.Debug("Event handled", "kind", evt.Kind, "queued", start.Sub(evt.ReceivedAt), "took", time.Since(start))
}
