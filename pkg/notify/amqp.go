// Package notify implements the Notifier contract over AMQP, grounded on
// original_source/game_service/src/amqp.rs (a lapin-based publisher). The
// Go ecosystem has no direct equivalent of lapin in the retrieved example
// pack, so github.com/rabbitmq/amqp091-go — the standard idiomatic Go AMQP
// 0-9-1 client — is used instead.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/decred/slog"
)

// GameQueueName is the queue game-update notifications are published to.
const GameQueueName = "GAME"

type gameUpdatedMessage struct {
	Type    string   `json:"type"`
	Payload []string `json:"payload"`
}

// AMQPNotifier publishes GAME_UPDATED notifications to GameQueueName.
type AMQPNotifier struct {
	channel *amqp.Channel
	log     slog.Logger
}

// Dial connects to uri, opens a channel, and declares GameQueueName.
func Dial(uri string, log slog.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(GameQueueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}
	return &AMQPNotifier{channel: ch, log: log}, nil
}

// constructGameUpdateMessage builds the exact wire format from §6:
// {"type":"GAME_UPDATED","payload":["users/…", …]}.
func constructGameUpdateMessage(userNames []string) ([]byte, error) {
	payload := make([]string, len(userNames))
	for i, n := range userNames {
		payload[i] = "users/" + strings.TrimPrefix(n, "users/")
	}
	return json.Marshal(gameUpdatedMessage{Type: "GAME_UPDATED", Payload: payload})
}

// GameUpdated publishes a best-effort notification; any failure is logged
// and swallowed, never surfaced to the RPC caller (§7).
func (n *AMQPNotifier) GameUpdated(ctx context.Context, userNames []string) {
	if len(userNames) == 0 {
		return
	}
	body, err := constructGameUpdateMessage(userNames)
	if err != nil {
		if n.log != nil {
			n.log.Errorf("failed to build game update message: %v", err)
		}
		return
	}

	err = n.channel.PublishWithContext(ctx, "", GameQueueName, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil && n.log != nil {
		n.log.Errorf("failed to publish game update message: %v", err)
	}
}
