package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/expenso-app/expenso/internal/core/events"
	"github.com/expenso-app/expenso/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event bus commands",
	Long:  `Publish test events to the in-process event bus for debugging handlers`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [event-type]",
	Short: "Publish a test event",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publishTestEvent(args[0])
	},
}

func publishTestEvent(eventType string) {
	lg := logger.L()

	bus := events.NewEventBus(lg)
	bus.Subscribe(eventType, func(ctx context.Context, ev events.Event) error {
		lg.Info("test handler received event",
			"event_id", ev.EventID(),
			"event_type", ev.EventType(),
			"payload", ev.Payload())
		return nil
	})

	ev := events.BaseEvent{
		ID:        fmt.Sprintf("test-%d", time.Now().UnixNano()),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"source": "cli"},
	}

	if err := bus.PublishSync(context.Background(), ev); err != nil {
		lg.Error("publish failed", "error", err)
		return
	}

	lg.Info("test event published", "event_type", eventType)
}

func init() {
	eventCmd.AddCommand(publishEventCmd)
}
