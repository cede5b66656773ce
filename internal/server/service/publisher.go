package service

import (
	"encoding/json"
	"fmt"

	"invest-service/internal/ports/models"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// VotePublisher writes vote-cast audit events to Kafka. Publishing is
// best-effort: a broker failure is logged and never fails the cast.
type VotePublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func NewVotePublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *VotePublisher {
	return &VotePublisher{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

func (p *VotePublisher) PublishVoteCast(event models.VoteCastEvent) {
	if p == nil || p.producer == nil {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("failed to encode vote event", zap.Error(err))
		return
	}

	// Key by entity so all casts on one entity land on one partition.
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%s-%d", event.Kind, event.EntityID)),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Warn("failed to publish vote event",
			zap.String("kind", event.Kind),
			zap.Uint("entity_id", event.EntityID),
			zap.Error(err),
		)
	}
}
