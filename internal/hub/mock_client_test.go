package hub_test

import (
	"critgo/backend/internal/models"
)

// mockClient is an in-memory stand-in for a websocket session.
type mockClient struct {
	connID string
	userID string
	admin  bool
	Recv   chan models.RealtimeMessage
	closed bool
}

func newMockClient(connID, userID string, admin bool) *mockClient {
	return &mockClient{
		connID: connID,
		userID: userID,
		admin:  admin,
		Recv:   make(chan models.RealtimeMessage, 4),
	}
}

// newSlowMockClient has no buffer: any push would block, so the hub must
// drop it instead.
func newSlowMockClient(connID, userID string, admin bool) *mockClient {
	return &mockClient{
		connID: connID,
		userID: userID,
		admin:  admin,
		Recv:   make(chan models.RealtimeMessage),
	}
}

func (m *mockClient) GetConnID() string                             { return m.connID }
func (m *mockClient) GetUserID() string                             { return m.userID }
func (m *mockClient) IsAdmin() bool                                 { return m.admin }
func (m *mockClient) GetSendChannel() chan<- models.RealtimeMessage { return m.Recv }
func (m *mockClient) Run()                                          {}
func (m *mockClient) Close()                                        { m.closed = true }
