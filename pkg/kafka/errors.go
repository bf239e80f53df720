package kafka

import "errors"

var (
	ErrProducerClosed = errors.New("producer is closed")
	ErrEmptyTopic     = errors.New("topic cannot be empty")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
)
