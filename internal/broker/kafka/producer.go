package kafka

import (
	"context"

	wbkafka "github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/retry"

	"placid-connector/internal/config"
)

// ProducerClient publishes batch execution results to the results topic.
type ProducerClient struct {
	producer *wbkafka.Producer
	retries  retry.Strategy
}

func NewProducerClient(cfg *config.Config) *ProducerClient {
	return &ProducerClient{
		producer: wbkafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ResultsTopic),
		retries:  cfg.DefaultRetryStrategy(),
	}
}

func (p *ProducerClient) Publish(ctx context.Context, key, value []byte) error {
	return p.producer.SendWithRetry(ctx, p.retries, key, value)
}

func (p *ProducerClient) Close() error {
	return p.producer.Close()
}
