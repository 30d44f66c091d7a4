package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes winner events to the notification topic. Delivery is
// fire-and-forget: failures are logged and never fail the caller.
type Producer struct {
	w writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
	}
}

func (p *Producer) NotifyWinner(ctx context.Context, payload WinnerDeterminedPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal winner payload: %w", err)
	}
	envelope := Envelope{
		EventID:    uuid.NewString(),
		EventType:  EventWinnerDetermined,
		OccurredAt: time.Now(),
		Producer:   producerName,
		Payload:    raw,
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("can't marshal winner envelope: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(payload.AuctionID)),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("can't publish winner event: %w", err)
	}

	zap.L().Info("winner event published",
		zap.Int("auctionID", payload.AuctionID),
		zap.Int("bidderID", payload.BidderID),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.w.Close()
}
