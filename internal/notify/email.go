package notify

import (
	"fmt"
	"html"
	"log"
	"strings"

	"critgo/backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Send delivers one HTML message.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.FromEmail, m.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}

	log.Printf("INFO: Email enviado a %s", to)
	return nil
}

// buildEmailBody renders the notification mail. All event fields are
// user-supplied and must be escaped.
func buildEmailBody(evt models.EventoQueja) string {
	var b strings.Builder

	b.WriteString("<div style='font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;'>")
	fmt.Fprintf(&b, "<h2 style='color: #dc3545; border-bottom: 2px solid #dc3545; padding-bottom: 10px;'>Nueva Queja Recibida (%s)</h2>", html.EscapeString(evt.Tipo))

	b.WriteString("<div style='background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;'>")
	b.WriteString("<h3 style='color: #495057; margin-top: 0;'>Información del Cliente</h3>")
	fmt.Fprintf(&b, "<p><strong>Nombre:</strong> %s</p>", html.EscapeString(evt.NombreCliente))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(evt.Correo))
	if evt.UsuarioRegistrado != "" {
		fmt.Fprintf(&b, "<p><strong>Usuario en Sistema:</strong> %s</p>", html.EscapeString(evt.UsuarioRegistrado))
	}
	b.WriteString("</div>")

	b.WriteString("<div style='background: #ffffff; padding: 15px; border: 1px solid #dee2e6; border-radius: 5px; margin: 20px 0;'>")
	b.WriteString("<h3 style='color: #495057; margin-top: 0;'>Detalles de la Queja</h3>")
	fmt.Fprintf(&b, "<p><strong>Categoría:</strong> <span style='background: #007bff; color: white; padding: 2px 8px; border-radius: 3px;'>%s</span></p>", html.EscapeString(evt.Categoria))
	fmt.Fprintf(&b, "<p><strong>Título:</strong> %s</p>", html.EscapeString(evt.Titulo))
	b.WriteString("<p><strong>Descripción:</strong></p>")
	descripcion := strings.ReplaceAll(html.EscapeString(evt.Descripcion), "\n", "<br>")
	fmt.Fprintf(&b, "<div style='background: #f8f9fa; padding: 10px; border-left: 4px solid #007bff; margin: 10px 0;'>%s</div>", descripcion)
	b.WriteString("</div>")

	fmt.Fprintf(&b, "<div style='background: #e9ecef; padding: 10px; border-radius: 5px; text-align: center;'><small style='color: #6c757d;'>Queja recibida el %s a las %s</small></div>",
		evt.Fecha.Format("02/01/2006"), evt.Fecha.Format("15:04"))
	b.WriteString("</div>")

	return b.String()
}
