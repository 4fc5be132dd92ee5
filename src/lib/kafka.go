package lib

import (
	"context"
	"fmt"
	"log"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

func GetKafkaProducerConfig(broker, clientID string) kafka.ConfigMap {
	return kafka.ConfigMap{
		"bootstrap.servers": broker,
		"client.id":         clientID,
		"acks":              "all",
	}
}

// KafkaNotifier publishes booking events keyed by booking id.
type KafkaNotifier struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaNotifier(broker, clientID, topic string) (*KafkaNotifier, error) {
	cfg := GetKafkaProducerConfig(broker, clientID)
	p, err := kafka.NewProducer(&cfg)
	if err != nil {
		log.Printf("Error on producer: %s\n", err.Error())
		return nil, err
	}
	go logProducerEvents(p.Events())
	return &KafkaNotifier{producer: p, topic: topic}, nil
}

// logProducerEvents drains the producer's shared event channel until Close.
// Deliveries go to per-message channels, so only errors and stray events
// arrive here. It returns the number of errors seen.
func logProducerEvents(events <-chan kafka.Event) int {
	errs := 0
	for e := range events {
		switch ev := e.(type) {
		case kafka.Error:
			errs++
			log.Printf("[Kafka] Producer error: %s\n", ev.Error())
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				errs++
				log.Printf("[Kafka] Delivery failed: %s\n", ev.TopicPartition.Error.Error())
			}
		default:
			log.Printf("[Kafka] Ignored event: %s\n", ev.String())
		}
	}
	return errs
}

func (n *KafkaNotifier) Name() string {
	return "kafka"
}

func (n *KafkaNotifier) BookingCreated(ctx context.Context, evt BookingEvent) error {
	value, err := evt.Payload()
	if err != nil {
		return err
	}
	deliveries := make(chan kafka.Event, 1)
	err = n.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &n.topic, Partition: kafka.PartitionAny},
		Key:            []byte(evt.BookingID),
		Value:          value,
		Headers:        []kafka.Header{{Key: "event", Value: []byte(BOOKING_CREATED)}},
	}, deliveries)
	if err != nil {
		return fmt.Errorf("produce: %w", err)
	}
	select {
	case e := <-deliveries:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event %v", e)
		}
		return m.TopicPartition.Error
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *KafkaNotifier) Close() {
	n.producer.Flush(5000)
	n.producer.Close()
}
