package repository

import (
	"context"

	domrepo "BondRV/internal/domain/repository"
	pkgkafka "BondRV/pkg/kafka"
)

// KafkaPublisher emits assessment events to a Kafka topic for downstream
// consumers (dashboards, audit pipelines). The service itself keeps no state.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

var _ domrepo.Publisher = (*KafkaPublisher)(nil)

// Publish sends one event keyed by bond name so assessments for the same
// instrument land on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	return p.producer.Publish(ctx, p.topic, []byte(key), value)
}
