package cmd

// Config carries everything the process reads from its environment. Delivery
// pricing amounts are minor currency units.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	ExpressDeliveryFee    int64
	StandardDeliveryFee   int64
	FreeDeliveryThreshold int64
}
