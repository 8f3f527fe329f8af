package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
	"github.com/smazurov/tulipd/internal/events"
)

// registerSSERoutes registers the native Huma SSE endpoint.
func (s *Server) registerSSERoutes() {
	if s.eventBus == nil {
		s.logger.Debug("No event bus, skipping SSE routes")
		return
	}

	sse.Register(s.api, huma.Operation{
		OperationID: "events-stream",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Server-Sent Events Stream",
		Description: "Real-time stream of light changes, LED commands, write failures and state file reloads",
		Tags:        []string{"events"},
		Security:    withAuth(),
		Errors:      []int{401},
	}, map[string]any{
		"light-state-changed": events.LightStateChangedEvent{},
		"led-command-applied": events.LEDCommandAppliedEvent{},
		"led-write-failed":    events.LEDWriteFailedEvent{},
		"state-file-reloaded": events.StateFileReloadedEvent{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		eventCh := make(chan any, 32)

		unsubscribers := []func(){
			events.SubscribeToChannel[events.LightStateChangedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.LEDCommandAppliedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.LEDWriteFailedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.StateFileReloadedEvent](s.eventBus, eventCh),
		}
		defer func() {
			for _, unsub := range unsubscribers {
				unsub()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventCh:
				if err := send.Data(event); err != nil {
					return
				}
			}
		}
	})
}
