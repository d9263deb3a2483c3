package kafka

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"
)

type Producer struct {
	producer sarama.SyncProducer
}

func NewProducer(broker string) *Producer {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error

	for i := 1; i <= 10; i++ {
		producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			log.Println("kafka producer initialized")
			return &Producer{producer: producer}
		}

		log.Printf("waiting for kafka... (%d/10) error: %v", i, err)
		time.Sleep(5 * time.Second)
	}

	log.Fatalf("failed to start kafka producer after retries: %v", err)
	return nil
}

// publish is fire-and-forget: failures are logged, never surfaced to
// the request that triggered the event. A nil Producer publishes nothing.
func (p *Producer) publish(topic string, event interface{}) {
	if p == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", topic, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("failed to send %s kafka message: %v", topic, err)
		return
	}

	log.Printf("published %s event: %s", topic, string(data))
}

func (p *Producer) PublishOrderCreated(event interface{}) {
	p.publish("order.created", event)
}

func (p *Producer) PublishOrderStatusUpdated(event interface{}) {
	p.publish("order.status.updated", event)
}

func (p *Producer) PublishCartUpdated(event interface{}) {
	p.publish("cart.updated", event)
}
