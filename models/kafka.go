package models

// Record is a keyed payload as it travels to kafka or to the dead letter store.
type Record struct {
	Key   []byte
	Value []byte
	Topic string
}

type ProducerConfig struct {
	Brokers     []string
	ClientID    string
	TopicPrefix string
}
