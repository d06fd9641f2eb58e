package notifications

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/ports"
)

// LogSender delivers acknowledgements to the log. Stands in for a real mail
// transport in local wiring; always reports Sent.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender writing to the given logger.
func NewLogSender(logger *slog.Logger) LogSender {
	return LogSender{
		logger: logger.With("component", "acknowledgement_sender"),
	}
}

// Deliver logs the acknowledgement and reports Sent.
func (s LogSender) Deliver(ctx context.Context, ack ports.OrderAcknowledgement) ports.SendResult {
	s.logger.InfoContext(ctx, "Acknowledgement sent",
		"email", ack.EmailAddress.Value(),
		"letter_bytes", len(ack.Letter.Body))
	return ports.Sent
}

// SuppressedSender never delivers anything. Used when acknowledgements are
// disabled; the workflow still runs, it just emits no acknowledgement event.
type SuppressedSender struct{}

// Deliver reports NotSent without attempting delivery.
func (SuppressedSender) Deliver(_ context.Context, _ ports.OrderAcknowledgement) ports.SendResult {
	return ports.NotSent
}
