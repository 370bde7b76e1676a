// Package notify fans the "new complaint" event out to the admin sinks:
// the realtime broadcast group, the configured admin email address and,
// when configured, a Telegram chat. Delivery is best effort. Every failure
// is terminal here; nothing propagates back to the submission that
// triggered it.
package notify

import (
	"fmt"
	"log"

	"critgo/backend/internal/models"
)

// Broadcaster pushes the event towards connected admin sessions. The
// storage service implements it by publishing on the shared Redis channel,
// which every hub instance subscribes to.
type Broadcaster interface {
	PublishEventoQueja(evt models.EventoQueja) error
}

// Mailer sends one HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// TelegramNotifier sends the event to an operator chat.
type TelegramNotifier interface {
	SendEvento(evt models.EventoQueja) error
}

// Service is the notification fan-out. Telegram is optional and nil-safe.
type Service struct {
	Broadcaster Broadcaster
	Mailer      Mailer
	Telegram    TelegramNotifier
	AdminEmail  string
}

func NewService(b Broadcaster, m Mailer, tg TelegramNotifier, adminEmail string) *Service {
	return &Service{
		Broadcaster: b,
		Mailer:      m,
		Telegram:    tg,
		AdminEmail:  adminEmail,
	}
}

// NotifyNuevaQueja runs every sink independently. A failing or panicking
// sink is logged and the remaining sinks still run.
func (s *Service) NotifyNuevaQueja(evt models.EventoQueja) {
	s.runSink("broadcast", func() error {
		if s.Broadcaster == nil {
			return nil
		}
		return s.Broadcaster.PublishEventoQueja(evt)
	})

	s.runSink("email", func() error {
		return s.sendEmail(evt)
	})

	s.runSink("telegram", func() error {
		if s.Telegram == nil {
			return nil
		}
		return s.Telegram.SendEvento(evt)
	})
}

func (s *Service) runSink(name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: Notification sink %s panicked: %v", name, r)
		}
	}()
	if err := fn(); err != nil {
		log.Printf("ERROR: Notification sink %s failed: %v", name, err)
	}
}

func (s *Service) sendEmail(evt models.EventoQueja) error {
	if s.AdminEmail == "" {
		log.Printf("WARNING: Admin email not configured, skipping email notification for %q", evt.Titulo)
		return nil
	}
	if s.Mailer == nil {
		return nil
	}

	subject := fmt.Sprintf("Nueva Queja %s - %s", evt.Tipo, evt.Titulo)
	return s.Mailer.Send(s.AdminEmail, subject, buildEmailBody(evt))
}
