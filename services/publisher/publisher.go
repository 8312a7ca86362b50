package publisher

// Publisher represents a service for publishing ranked deals downstream
type Publisher interface {
	// Publish publishes a deal message under the given key
	Publish(key string, message []byte) error

	// TrimStream trims the stream to the configured maximum length
	TrimStream() error

	// Close closes the publisher connection
	Close() error
}
