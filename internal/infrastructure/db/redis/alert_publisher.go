package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// AlertPublisher delivers activated alert messages on a Redis pub/sub channel.
// It implements ports.MessageSender.
type AlertPublisher struct {
	client  *redis.Client
	channel string
}

func NewAlertPublisher(client *redis.Client, channel string) *AlertPublisher {
	return &AlertPublisher{client: client, channel: channel}
}

// SendMessage publishes message. Having no subscribers is not an error.
func (p *AlertPublisher) SendMessage(ctx context.Context, message string) error {
	if err := p.client.Publish(ctx, p.channel, message).Err(); err != nil {
		return fmt.Errorf("publish alert on %s: %w", p.channel, err)
	}
	return nil
}
