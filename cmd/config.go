package cmd

// Config carries the environment-provided settings for the service.
// AddressServiceURL and KafkaHost are optional: an empty address service URL
// wires the accept-all checker, an empty Kafka host wires the no-op
// publisher.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	KafkaHost            string
	KafkaOrderEventTopic string
	RedisHost            string
	RedisPort            string
	AddressServiceURL    string
}
