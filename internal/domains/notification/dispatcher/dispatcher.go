package dispatcher

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=../mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"trimly/config"
	"trimly/infras/kafka"
	"trimly/infras/otel"
	"trimly/internal/domains/notification/model"
	"trimly/internal/domains/notification/repository"
	"trimly/shared/constant"
	gModel "trimly/shared/model"
	"trimly/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	EventBookingRequested   = "booking.requested"
	EventBookingConfirmed   = "booking.confirmed"
	EventBookingRejected    = "booking.rejected"
	EventBookingCancelled   = "booking.cancelled"
	EventBookingCompleted   = "booking.completed"
	EventRescheduleProposed = "booking.reschedule_proposed"
	EventRescheduleAnswered = "booking.reschedule_answered"
	EventShopStatusChanged  = "shop.status_changed"
)

type Event struct {
	Kind        string `json:"kind"`
	RecipientID string `json:"recipient_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	BookingID   string `json:"booking_id,omitempty"`
	ShopID      string `json:"shop_id,omitempty"`
}

// Dispatcher fans a domain event out as an in-app notification row and
// a kafka message. Delivery is fire-and-forget: failures are logged and
// never reach the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

type dispatcherImpl struct {
	repo  repository.Notification
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Notification, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		repo:  repo,
		kafka: kafkaClient,
		cfg:   cfg,
		otel:  otel,
	}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, event Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		c, scope := d.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".Dispatch")
		defer scope.End()

		scope.SetAttribute("event.kind", event.Kind)

		notification := model.Notification{
			ID:       uuid.NewString(),
			UserID:   event.RecipientID,
			Kind:     event.Kind,
			Title:    event.Title,
			Body:     event.Body,
			Metadata: gModel.NewMetadata(event.Kind, timezone.Now()),
		}

		if err := d.repo.Insert(c, notification); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("kind", event.Kind).Msg("failed to persist notification")
		}

		message := kafka.Message{
			Key:   event.Kind,
			Value: event,
		}

		if err := d.kafka.SendMessages(c, d.cfg.Kafka.Topic.Notifications, message); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("kind", event.Kind).Msg("failed to publish notification event")
		}
	}()
}
