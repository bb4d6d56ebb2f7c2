package queue

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/SundayYogurt/contacts_service/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type KafkaConsumer struct {
	Reader      *kafka.Reader
	Handler     interfaces.ConsumerHandler
	ServiceName string
}

func NewKafkaConsumer(broker, topic, groupID, username, password string, handler interfaces.ConsumerHandler) *KafkaConsumer {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	if username != "" {
		dialer.TLS = &tls.Config{}
		dialer.SASLMechanism = plain.Mechanism{
			Username: username,
			Password: password,
		}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		Dialer:   dialer,
	})

	return &KafkaConsumer{
		Reader:      reader,
		Handler:     handler,
		ServiceName: "Mail Service",
	}
}

// Listen consumes until the process exits. Handler failures are logged and
// the offset still advances; mail delivery is best effort.
func (kc *KafkaConsumer) Listen() {
	for {
		msg, err := kc.Reader.ReadMessage(context.Background())
		if err != nil {
			log.Printf("[%s] read error: %v\n", kc.ServiceName, err)
			continue
		}

		if err := kc.Handler.HandleMessage(string(msg.Value)); err != nil {
			log.Printf("[%s] handle error: %v\n", kc.ServiceName, err)
		}
	}
}
