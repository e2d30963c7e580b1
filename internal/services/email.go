package services

import (
	"context"
	"fmt"

	"eventbooking/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendReservationConfirmation sends the reservation confirmation email using
// the "reservation_confirmation" template and the given data.
func (s *emailService) SendReservationConfirmation(ctx context.Context, data *domain.ReservationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("reservation confirmation data is nil")
	}
	subject, html, text, err := s.renderer.Render("reservation_confirmation", data)
	if err != nil {
		return fmt.Errorf("render reservation confirmation: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send reservation confirmation: %w", err)
	}
	return nil
}
