package smtp_test

import (
	"context"
	"errors"
	netsmtp "net/smtp"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/require"

	"mca/pkg/notifier"
	"mca/pkg/notifier/smtp"
	"mca/pkg/serrors"
)

type recorder struct {
	mu    sync.Mutex
	sent  []*email.Email
	addrs []string
	auths []netsmtp.Auth
	err   error
}

func (r *recorder) send(e *email.Email, addr string, auth netsmtp.Auth) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, e)
	r.addrs = append(r.addrs, addr)
	r.auths = append(r.auths, auth)

	return r.err
}

var reminder = notifier.Message{
	To:      []string{"joe@diner.test"},
	Subject: "Upcoming payment",
	Text:    "A payment of $500.00 is due on 2025-03-17.",
}

func TestClient_Send(t *testing.T) {
	rec := &recorder{}
	c := smtp.New(smtp.Options{
		Host:     "relay.test",
		Port:     587,
		Username: "user",
		Password: "pass",
		From:     "collections@funder.test",
		Send:     rec.send,
	})

	require.NoError(t, c.Send(context.Background(), reminder))
	require.Len(t, rec.sent, 1)
	require.Equal(t, "relay.test:587", rec.addrs[0])
	require.NotNil(t, rec.auths[0])

	e := rec.sent[0]
	require.Equal(t, "collections@funder.test", e.From)
	require.Equal(t, []string{"joe@diner.test"}, e.To)
	require.Equal(t, "Upcoming payment", e.Subject)
	require.Equal(t, reminder.Text, string(e.Text))
}

func TestClient_Send_NoAuth(t *testing.T) {
	rec := &recorder{}
	c := smtp.New(smtp.Options{Host: "localhost", Port: 25, From: "a@b.test", Send: rec.send})

	require.NoError(t, c.Send(context.Background(), reminder))
	require.Nil(t, rec.auths[0])
}

func TestClient_Send_Invalid(t *testing.T) {
	rec := &recorder{}
	c := smtp.New(smtp.Options{Host: "localhost", Port: 25, Send: rec.send})

	err := c.Send(context.Background(), notifier.Message{Subject: "x"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	err = c.Send(context.Background(), notifier.Message{To: []string{"nobody"}, Subject: "x"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Empty(t, rec.sent)
}

func TestClient_Send_RelayError(t *testing.T) {
	rec := &recorder{err: errors.New("421 service not available")}
	c := smtp.New(smtp.Options{Host: "localhost", Port: 25, Send: rec.send})

	err := c.Send(context.Background(), reminder)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.False(t, serrors.IsPermanent(err))
}

func TestClient_Send_RelayReplies(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		kind      error
		permanent bool
	}{
		{"mailbox busy", &textproto.Error{Code: 450, Msg: "mailbox busy"}, serrors.ErrUnavailable, false},
		{"mailbox rejected", &textproto.Error{Code: 550, Msg: "no such user"}, serrors.ErrBadRequest, true},
		{"authentication failed", &textproto.Error{Code: 535, Msg: "bad credentials"}, serrors.ErrBadRequest, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{err: tt.err}
			c := smtp.New(smtp.Options{Host: "localhost", Port: 25, Send: rec.send})

			err := c.Send(context.Background(), reminder)
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.permanent, serrors.IsPermanent(err))

			var reply *textproto.Error
			require.ErrorAs(t, err, &reply)
		})
	}
}

func TestClient_Send_RateLimited(t *testing.T) {
	rec := &recorder{}
	c := smtp.New(smtp.Options{
		Host:          "localhost",
		Port:          25,
		RatePerSecond: 0.001,
		Burst:         1,
		Send:          rec.send,
	})

	require.NoError(t, c.Send(context.Background(), reminder))

	// the bucket is empty and refills far beyond the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := c.Send(ctx, reminder)
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Len(t, rec.sent, 1)
}
