package messaging

import "fmt"

// EventPublisher fans rendered game events out to per-room NATS
// subjects. Anything watching a room (player connections, bots, log
// tails) subscribes to its subject.
type EventPublisher struct {
	server *NatsServer
}

// NewEventPublisher wraps a NatsServer for room-scoped event delivery.
func NewEventPublisher(server *NatsServer) *EventPublisher {
	return &EventPublisher{server: server}
}

// RoomSubject returns the subject events for a room are published on.
func RoomSubject(roomID uint64) string {
	return fmt.Sprintf("room.%d", roomID)
}

func (p *EventPublisher) PublishRoom(roomID uint64, data []byte) error {
	return p.server.Publish(RoomSubject(roomID), data)
}
