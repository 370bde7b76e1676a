// Package hub owns the set of connected realtime sessions and pushes
// "NewComplaint" events to those in the admin group. The client set is
// mutated only inside the Run loop, through the register/unregister
// channels, so no locking is needed around it.
package hub

import (
	"log"

	"critgo/backend/internal/models"
	"critgo/backend/internal/storage"
)

// Manager is the realtime session hub.
type Manager struct {
	// Clients holds every connected session keyed by connection id.
	// Touched only by the Run goroutine.
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	BroadcastCh  chan models.EventoQueja

	// Storage provides the Redis subscription feeding BroadcastCh.
	// Nil in tests; BroadcastCh can then be driven directly.
	Storage *storage.Service
}

func NewManager(s *storage.Service) *Manager {
	return &Manager{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		BroadcastCh:  make(chan models.EventoQueja),
		Storage:      s,
	}
}

// Run is the hub dispatcher. It must run in exactly one goroutine.
func (m *Manager) Run() {
	if m.Storage != nil {
		m.startPubSubListener()
	}

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetConnID()] = client
			if client.IsAdmin() {
				log.Printf("INFO: Admin session %s (usuario %s) joined the notification group", client.GetConnID(), client.GetUserID())
			}

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetConnID()]; ok {
				delete(m.Clients, client.GetConnID())
				client.Close()
			}

		case evt := <-m.BroadcastCh:
			m.broadcastToAdmins(evt)
		}
	}
}

// broadcastToAdmins pushes the event to every admin session. A session
// whose send buffer is full is dropped rather than blocking the hub.
func (m *Manager) broadcastToAdmins(evt models.EventoQueja) {
	msg := models.NewComplaintMessage(evt)

	for id, client := range m.Clients {
		if !client.IsAdmin() {
			continue
		}
		select {
		case client.GetSendChannel() <- msg:
		default:
			log.Printf("WARNING: Dropping slow admin session %s", id)
			delete(m.Clients, id)
			client.Close()
		}
	}
}
