package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authkit-backend/pkg/config"
	"authkit-backend/pkg/token"
)

type captureSender struct {
	mails chan Mail
}

func newCaptureSender() *captureSender {
	return &captureSender{mails: make(chan Mail, 8)}
}

func (s *captureSender) Send(ctx context.Context, mail Mail) error {
	s.mails <- mail
	return nil
}

func (s *captureSender) wait(t *testing.T) Mail {
	t.Helper()
	select {
	case mail := <-s.mails:
		return mail
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mail")
		return Mail{}
	}
}

func mailerConfig() *config.Config {
	return &config.Config{
		SecretKey:              "access-secret",
		VerifyEmailTokenExpiry: time.Minute,
	}
}

func TestWorkerDeliversSignUpMail(t *testing.T) {
	cfg := mailerConfig()
	codec := token.NewCodec()
	sender := newCaptureSender()

	worker := NewWorker(NewHandler(sender, codec, cfg), 8)
	worker.Start()
	defer worker.Stop()

	worker.Enqueue(Event{Kind: EventSignUp, Email: "alice@example.com"})

	mail := sender.wait(t)
	assert.Equal(t, EventSignUp, mail.Kind)
	assert.Equal(t, "alice@example.com", mail.Email)

	// The verification token is minted on the consumer side.
	require.NotEmpty(t, mail.Token)
	payload, err := codec.Verify(mail.Token, cfg.SecretKey)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", payload.Email)
}

func TestWorkerDeliversPasswordResetMail(t *testing.T) {
	cfg := mailerConfig()
	codec := token.NewCodec()
	sender := newCaptureSender()

	worker := NewWorker(NewHandler(sender, codec, cfg), 8)
	worker.Start()
	defer worker.Stop()

	worker.Enqueue(Event{Kind: EventPasswordReset, Email: "alice@example.com", Token: "reset-token"})

	mail := sender.wait(t)
	assert.Equal(t, EventPasswordReset, mail.Kind)
	// Password-reset events carry the token issued upstream, unchanged.
	assert.Equal(t, "reset-token", mail.Token)
}

func TestUnimplementedSender(t *testing.T) {
	sender := NewUnimplementedSender()
	err := sender.Send(context.Background(), Mail{Email: "alice@example.com", Kind: EventSignUp})
	assert.Error(t, err)
}

func TestHandlerSwallowsSendErrors(t *testing.T) {
	cfg := mailerConfig()
	codec := token.NewCodec()
	handler := NewHandler(NewUnimplementedSender(), codec, cfg)

	// Must not panic or propagate anything.
	handler.Handle(context.Background(), Event{Kind: EventSignUp, Email: "alice@example.com"})
}
