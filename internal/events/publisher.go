package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/IBM/sarama"

	"github.com/pooldraft/pooldraft/internal/observability"
)

type Config struct {
	Topic     string
	QueueSize int
}

// Producer is the slice of sarama.SyncProducer the publisher needs.
type Producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

// NewSyncProducer connects a sarama sync producer with the settings
// the publisher expects.
func NewSyncProducer(brokers string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal

	list := strings.Split(brokers, ",")
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}
	p, err := sarama.NewSyncProducer(list, cfg)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}
	return p, nil
}

// Publisher queues events on a bounded channel and delivers them from
// a single worker. Enqueue never blocks the request path: a full
// queue drops the event and counts the drop.
type Publisher struct {
	cfg      Config
	producer Producer
	log      *slog.Logger
	ch       chan Event
}

func NewPublisher(cfg Config, log *slog.Logger, producer Producer) *Publisher {
	if log == nil {
		log = slog.Default()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	return &Publisher{
		cfg:      cfg,
		producer: producer,
		log:      log,
		ch:       make(chan Event, cfg.QueueSize),
	}
}

// Publish enqueues an event for delivery.
func (p *Publisher) Publish(ev Event) {
	if err := ev.Validate(); err != nil {
		observability.IncEventDropped("invalid")
		p.log.Warn("dropping invalid design event", "err", err)
		return
	}
	select {
	case p.ch <- ev:
	default:
		observability.IncEventDropped("queue_full")
		p.log.Warn("design event queue full; dropping", "design_id", ev.DesignID)
	}
}

// Run delivers queued events until the context is cancelled.
func (p *Publisher) Run(ctx context.Context) {
	p.log.Info("design event publisher starting", "topic", p.cfg.Topic, "queue", cap(p.ch))
	for {
		select {
		case <-ctx.Done():
			p.log.Info("design event publisher shutting down")
			return
		case ev := <-p.ch:
			p.deliver(ev)
		}
	}
}

func (p *Publisher) deliver(ev Event) {
	body, err := json.Marshal(ev)
	if err != nil {
		observability.IncEventDropped("encode")
		p.log.Error("encode design event", "design_id", ev.DesignID, "err", err)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.cfg.Topic,
		Key:   sarama.StringEncoder(ev.DesignID),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		observability.IncEventDropped("send")
		p.log.Error("send design event", "design_id", ev.DesignID, "err", err)
		return
	}
	observability.IncEventPublished()
}
