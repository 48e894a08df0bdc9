// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package audit

import (
	"context"
	"encoding/json"

	"github.com/samber/oops"
	"github.com/segmentio/kafka-go"
)

// KafkaRecorder streams Decisions to a Kafka topic, each message keyed
// by subject. The partition is chosen by the least-bytes balancer, not
// by the key, so one subject's decisions may be spread over several
// partitions and their order across partitions is not preserved. It
// wraps *kafka.Writer rather than reimplementing batching, retries, or
// compression.
type KafkaRecorder struct {
	writer *kafka.Writer
}

// NewKafkaRecorder builds a KafkaRecorder writing to topic across
// brokers, using the least-bytes balancer, which sends each message to
// the partition that has received the fewest bytes.
func NewKafkaRecorder(brokers []string, topic string) *KafkaRecorder {
	return &KafkaRecorder{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

// Record implements Recorder, publishing d as a JSON message keyed by
// d.Subject.
func (r *KafkaRecorder) Record(ctx context.Context, d Decision) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return oops.In("audit").Code("InvalidArgument").Wrapf(err, "marshal decision")
	}

	msg := kafka.Message{Key: []byte(d.Subject), Value: payload}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		return oops.In("audit").Code("SinkUnavailable").Wrapf(err, "publish decision %s", d.ID)
	}
	return nil
}

// Close flushes and releases the underlying writer's connections.
func (r *KafkaRecorder) Close() error {
	return r.writer.Close()
}
