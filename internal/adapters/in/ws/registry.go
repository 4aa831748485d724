package ws

import (
	"sync"
)

// registry tracks which clients belong to which rooms. A client may sit in
// any number of rooms at once; membership is dropped atomically when the
// client disconnects. All methods are safe for concurrent use.
type registry struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func newRegistry() *registry {
	return &registry{rooms: make(map[string]map[*client]struct{})}
}

// join adds the client to a room, creating the room on first use.
func (r *registry) join(room string, c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[room]
	if !ok {
		members = make(map[*client]struct{})
		r.rooms[room] = members
	}
	members[c] = struct{}{}
}

// remove drops the client from every room it joined. Empty rooms are deleted.
func (r *registry) remove(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for room, members := range r.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
}

// broadcast enqueues a frame for every current member of the room.
// A room nobody joined is a no-op.
func (r *registry) broadcast(room string, frame Frame) {
	r.mu.RLock()
	members := make([]*client, 0, len(r.rooms[room]))
	for c := range r.rooms[room] {
		members = append(members, c)
	}
	r.mu.RUnlock()

	for _, c := range members {
		c.enqueue(frame)
	}
}
