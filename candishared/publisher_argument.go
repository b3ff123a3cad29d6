package candishared

// PublisherArgument declare publisher argument
type PublisherArgument struct {
	// Topic queue name, used as routing key on default exchange
	Topic string
	// Exchange fanout topic name, when set message is broadcast to all bound queues and Topic is ignored
	Exchange    string
	MessageID   string
	Header      map[string]interface{}
	ContentType string
	Message     []byte
}
