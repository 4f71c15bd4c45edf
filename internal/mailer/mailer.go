package mailer

import (
	"context"
	"log"

	"authkit-backend/internal/apperror"
	"authkit-backend/pkg/config"
	"authkit-backend/pkg/token"
)

// Event kinds published by the auth service.
const (
	EventSignUp        = "signup"
	EventPasswordReset = "password_reset"
)

// Event is a fire-and-forget mail request. Sign-up events carry only the
// address; the verification token is minted on the consumer side so it is
// fresh when the mail goes out. Password-reset events carry the token issued
// by the auth service.
type Event struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

// Queue is the boundary the auth service publishes events to. Enqueue never
// blocks the caller and never surfaces delivery errors.
type Queue interface {
	Enqueue(event Event)
}

// Mail is a rendered message handed to a Sender.
type Mail struct {
	Email string
	Token string
	Kind  string
}

// Sender delivers a single mail.
type Sender interface {
	Send(ctx context.Context, mail Mail) error
}

// unimplementedSender is the default delivery backend. Sending mail is not
// wired to a provider; callers get a 501 and the worker logs the failure.
type unimplementedSender struct{}

func NewUnimplementedSender() Sender {
	return &unimplementedSender{}
}

func (s *unimplementedSender) Send(ctx context.Context, mail Mail) error {
	return apperror.NotImplemented("Email service not implemented", map[string]any{"email": mail.Email})
}

// Handler turns events into mails and hands them to the sender. Failures are
// logged, never propagated: mail delivery is best-effort by design.
type Handler struct {
	sender Sender
	codec  *token.Codec
	config *config.Config
}

func NewHandler(sender Sender, codec *token.Codec, cfg *config.Config) *Handler {
	return &Handler{
		sender: sender,
		codec:  codec,
		config: cfg,
	}
}

func (h *Handler) Handle(ctx context.Context, event Event) {
	mail := Mail{Email: event.Email, Token: event.Token, Kind: event.Kind}

	if event.Kind == EventSignUp {
		signed, err := h.codec.Generate(
			token.Payload{Email: event.Email},
			h.config.SecretKey,
			h.config.VerifyEmailTokenExpiry,
		)
		if err != nil {
			log.Printf("[Mailer] Error generating verification token: %v", err)
			return
		}
		mail.Token = signed
	}

	if err := h.sender.Send(ctx, mail); err != nil {
		log.Printf("[Mailer] Error sending %s email to %s: %v", event.Kind, event.Email, err)
		return
	}

	log.Printf("[Mailer] Sent %s email to %s", event.Kind, event.Email)
}
