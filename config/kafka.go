package config

import (
	"fmt"
	"formbuilder/utils"
	"net"
	"strconv"

	"github.com/segmentio/kafka-go"
)

const ChangeTopic = "form-changes"

func CreateTopic() error {
	broker := Env().KafkaBroker
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             ChangeTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 7 days retention
			{
				ConfigName:  "retention.ms",
				ConfigValue: "604800000",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

func GetWriter() (*kafka.Writer, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    ChangeTopic,
		Balancer: &kafka.Hash{},
		Async:    true,
	}, nil
}

// GetReader returns a reader in its own consumer group, so every instance
// sees every change.
func GetReader(instanceId string) (*kafka.Reader, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       ChangeTopic,
		GroupID:     fmt.Sprintf("%s-%s", ChangeTopic, instanceId),
		MaxBytes:    1e6,
		StartOffset: kafka.LastOffset,
	}), nil
}
