package event

import (
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/geometry/common/logger"
)

type Sender interface {
	SendToTopic(topic Topic)
	SendToTopicWithData(topic Topic, data ...interface{})
}

type Broker struct {
	bus messagebus.MessageBus

	Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

func (s *Broker) Subscribe(topic Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

func (s *Broker) SendToTopic(topic Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendToTopicWithData(topic Topic, data ...interface{}) {
	logger.Trace.Printf("Sending to '%s' with %d arguments", topic, len(data))
	s.bus.Publish(string(topic), data...)
}
