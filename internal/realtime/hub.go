package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Message types exchanged over the realtime channel.
const (
	TypeJoinRoom   = "join-room"
	TypeNewSound   = "new-sound"
	TypeSoundAdded = "sound-added"
	TypePing       = "ping"
	TypePong       = "pong"
)

// redisChannel carries room events between instances when redis is configured.
const redisChannel = "realtime:events"

// Message is a realtime event. Data is caller-defined and opaque to the hub.
type Message struct {
	Type string          `json:"type"`
	Room string          `json:"room,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Hub maintains room-scoped sets of connected clients and rebroadcasts events
// to room members. Delivery is fire-and-forget: a client whose send buffer is
// full simply misses the event. When a redis client is supplied, events are
// published through redis pub/sub so every instance's rooms see them.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]bool
	logger *logrus.Logger
	rdb    *redis.Client
}

func NewHub(logger *logrus.Logger, rdb *redis.Client) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]bool),
		logger: logger,
		rdb:    rdb,
	}
}

// Run blocks until ctx is done. With redis configured it consumes the shared
// event channel and delivers each event to local room members.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb == nil {
		<-ctx.Done()
		return
	}
	sub := h.rdb.Subscribe(ctx, redisChannel)
	defer func() { _ = sub.Close() }()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var msg Message
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				h.logger.WithError(err).Warn("realtime: bad bridge payload")
				continue
			}
			h.deliver(msg)
		}
	}
}

// Join subscribes a client to a named room.
func (h *Hub) Join(c *Client, room string) {
	if room == "" {
		return
	}
	h.mu.Lock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]bool)
		h.rooms[room] = members
	}
	members[c] = true
	h.mu.Unlock()
	h.logger.WithFields(logrus.Fields{"room": room, "members": len(members)}).Debug("realtime: client joined room")
}

// Leave removes a client from every room and closes its send channel.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	for room, members := range h.rooms {
		if members[c] {
			delete(members, c)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	h.mu.Unlock()
	c.closeSend()
}

// Publish fans an event out to its room. With redis configured the event goes
// through the shared channel and comes back via Run; otherwise it is delivered
// to local members directly.
func (h *Hub) Publish(ctx context.Context, msg Message) {
	if h.rdb != nil {
		b, err := json.Marshal(msg)
		if err != nil {
			return
		}
		if err := h.rdb.Publish(ctx, redisChannel, b).Err(); err != nil {
			h.logger.WithError(err).Warn("realtime: bridge publish failed, delivering locally")
			h.deliver(msg)
		}
		return
	}
	h.deliver(msg)
}

func (h *Hub) deliver(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[msg.Room] {
		select {
		case c.send <- msg:
		default:
			// slow subscriber, event dropped
		}
	}
}

// RoomSize reports the current number of members in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
