package hub

import "critgo/backend/internal/models"

// Client is one connected realtime session. The concrete transport is a
// websocket; the interface keeps the manager testable without one.
type Client interface {
	// GetConnID returns the unique id of this connection. One account may
	// hold several connections at once.
	GetConnID() string
	// GetUserID returns the account id the session authenticated as.
	GetUserID() string
	// IsAdmin reports whether the session belongs to the admin group.
	// Membership is fixed at connect time from the session's token.
	IsAdmin() bool

	// GetSendChannel returns the channel the manager pushes messages into.
	GetSendChannel() chan<- models.RealtimeMessage

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's send channel; the write pump drains
	// and closes the connection.
	Close()
}
