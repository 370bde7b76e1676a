package hub

import (
	"encoding/json"
	"log"

	"critgo/backend/internal/models"
)

// startPubSubListener subscribes to the shared Redis channel and feeds
// received events into the hub loop. Going through Redis means every
// running instance delivers to its own connected admin sessions, whichever
// instance accepted the originating submission.
func (m *Manager) startPubSubListener() {
	go func() {
		pubsub := m.Storage.SubscribeQuejas()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var evt models.EventoQueja
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.Printf("ERROR: Failed to unmarshal queja event from Redis: %v", err)
				continue
			}
			m.BroadcastCh <- evt
		}
	}()
}
