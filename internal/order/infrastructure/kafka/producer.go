package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Writer wraps a kafka-go writer configured for the order event stream.
// Messages are keyed by order id, so the Hash balancer keeps events for one
// order on one partition. Acks from all replicas are required.
type Writer struct {
	*kafka.Writer
}

func NewWriter(brokers []string) *Writer {
	return &Writer{
		Writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (w *Writer) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return w.Writer.WriteMessages(ctx, msgs...)
}
