package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestProducer_NotifyWinner(t *testing.T) {
	fw := &fakeWriter{}
	producer := &Producer{w: fw}

	payload := WinnerDeterminedPayload{
		AuctionID:  1,
		BidID:      3,
		BidderID:   4,
		ItemName:   "lamp",
		FinalPrice: "19350.00",
	}

	err := producer.NotifyWinner(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, fw.messages, 1)

	msg := fw.messages[0]
	assert.Equal(t, "1", string(msg.Key))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &envelope))
	assert.Equal(t, EventWinnerDetermined, envelope.EventType)
	assert.NotEmpty(t, envelope.EventID)
	assert.Equal(t, "auction-settlement", envelope.Producer)

	var got WinnerDeterminedPayload
	require.NoError(t, json.Unmarshal(envelope.Payload, &got))
	assert.Equal(t, payload, got)
}

func TestProducer_NotifyWinnerWriteFails(t *testing.T) {
	fw := &fakeWriter{writeErr: assert.AnError}
	producer := &Producer{w: fw}

	err := producer.NotifyWinner(context.Background(), WinnerDeterminedPayload{AuctionID: 1})
	assert.Error(t, err)
}

func TestProducer_Close(t *testing.T) {
	fw := &fakeWriter{}
	producer := &Producer{w: fw}

	assert.NoError(t, producer.Close())
	assert.True(t, fw.closed)
}

func TestNewProducer(t *testing.T) {
	producer := NewProducer([]string{"localhost:9092"}, "auction.winners")
	assert.NotNil(t, producer)
	assert.NoError(t, producer.Close())
}
