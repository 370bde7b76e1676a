package models

import "time"

// Submission tags carried on notification events.
const (
	TipoQuejaAnonima    = "ANÓNIMA"
	TipoQuejaRegistrada = "USUARIO REGISTRADO"
)

// EventoQueja is the "new complaint" notification event. It carries enough
// for every sink; the realtime channel forwards only a reduced view.
type EventoQueja struct {
	NombreCliente     string    `json:"clientName"`
	Correo            string    `json:"email"`
	Titulo            string    `json:"title"`
	Descripcion       string    `json:"description"`
	Categoria         string    `json:"category"`
	Tipo              string    `json:"type"`
	UsuarioRegistrado string    `json:"registeredUser,omitempty"`
	Fecha             time.Time `json:"time"`
}

// RealtimeMessage is the envelope pushed to connected websocket sessions.
type RealtimeMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// NewComplaintMessage builds the "NewComplaint" push for admin sessions.
// The wire payload is {clientName, title, type, time}.
func NewComplaintMessage(evt EventoQueja) RealtimeMessage {
	return RealtimeMessage{
		Event: "NewComplaint",
		Data: map[string]any{
			"clientName": evt.NombreCliente,
			"title":      evt.Titulo,
			"type":       evt.Tipo,
			"time":       evt.Fecha,
		},
	}
}
