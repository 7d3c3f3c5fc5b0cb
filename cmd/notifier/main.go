package main

import (
	"context"
	"os/signal"
	"syscall"
	"trimly/config"
	"trimly/infras/kafka"
	"trimly/internal/domains/notification/dispatcher"
	"trimly/shared/logger"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Drains the notifications topic and logs each delivery. Push channels
// (mail, mobile) would hang off this consumer.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg)

	client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic.Notifications, func(msg kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[dispatcher.Event](msg)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode notification event")

			return
		}

		event, _ := decoded.Value.(dispatcher.Event)

		log.Info().
			Str("kind", event.Kind).
			Str("recipient_id", event.RecipientID).
			Str("title", event.Title).
			Msg("notification delivered")
	})
}
