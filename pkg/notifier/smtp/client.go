// Package smtp provides a notifier.Notifier that sends email through an SMTP
// relay with a client side send rate.
package smtp

import (
	"context"
	"errors"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"

	"github.com/jordan-wright/email"
	"golang.org/x/time/rate"

	"mca/pkg/notifier"
	"mca/pkg/serrors"
)

// SendFunc delivers a composed email to the relay at addr.
type SendFunc func(e *email.Email, addr string, auth smtp.Auth) error

// Options configures the relay and the send rate.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// RatePerSecond and Burst configure the token bucket shared by all
	// senders. A non-positive rate disables throttling.
	RatePerSecond float64
	Burst         int

	// Send replaces the network delivery. Nil uses (*email.Email).Send.
	Send SendFunc
}

// Client is safe for concurrent use.
type Client struct {
	addr    string
	from    string
	auth    smtp.Auth
	limiter *rate.Limiter
	send    SendFunc
}

var _ notifier.Notifier = (*Client)(nil)

func New(opts Options) *Client {
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	var auth smtp.Auth
	if opts.Username != "" {
		auth = smtp.PlainAuth("", opts.Username, opts.Password, opts.Host)
	}

	send := opts.Send
	if send == nil {
		send = func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth) //nolint: wrapcheck
		}
	}

	return &Client{
		addr:    net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		from:    opts.From,
		auth:    auth,
		limiter: rate.NewLimiter(limit, burst),
		send:    send,
	}
}

// Send waits for a send slot and relays msg. It gives up when ctx is done.
func (c *Client) Send(ctx context.Context, msg notifier.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return serrors.Wrap(serrors.ErrTimeout, err, "could not reserve a send slot")
	}

	e := email.NewEmail()
	e.From = c.from
	e.To = msg.To
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)

	if err := c.send(e, c.addr, c.auth); err != nil {
		return relayError(err, c.addr)
	}

	return nil
}

// relayError classifies a delivery failure. A 5xx reply (rejected mailbox,
// failed authentication) will not change on retry.
func relayError(err error, addr string) error {
	var reply *textproto.Error
	if errors.As(err, &reply) && reply.Code >= 500 {
		return serrors.Wrap(serrors.ErrBadRequest, err, "relay %s rejected email", addr)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "could not send email to %s", addr)
}
