package natsio

import (
	"encoding/json"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/api/resource"
	"github.com/bokol-ooch/temporizadores/pkg/model"
	nats "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultSubject is the subject records are published on
const DefaultSubject = "temporizadores.registros.creados"

// Client publishes saved records to NATS and fans them out to subscribers
type Client struct {
	nc      *nats.Conn
	subject string
}

// New connects to the NATS server at url
func New(url, subject string) (*Client, error) {
	if subject == "" {
		subject = DefaultSubject
	}

	nc, err := nats.Connect(url,
		nats.Name("temporizadores"),
		nats.DrainTimeout(10*time.Second),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error("natsio: async error: ", err)
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("natsio: disconnected: ", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("natsio: reconnected")
		}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to NATS")
	}

	return &Client{
		nc:      nc,
		subject: subject,
	}, nil
}

// Subject returns the subject records are published on
func (c *Client) Subject() string {
	return c.subject
}

// Publish sends the record as JSON, in the same shape GET /registros uses
func (c *Client) Publish(m *model.Record) error {
	data, err := json.Marshal(resource.NewRecord(m))
	if err != nil {
		return errors.Wrap(err, "failed to encode record event")
	}

	if err := c.nc.Publish(c.subject, data); err != nil {
		return errors.Wrap(err, "failed to publish record event")
	}

	return nil
}

// Subscribe delivers every record event payload to fn
func (c *Client) Subscribe(fn func(data []byte)) (func() error, error) {
	sub, err := c.nc.Subscribe(c.subject, func(msg *nats.Msg) {
		fn(msg.Data)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to record events")
	}

	return sub.Unsubscribe, nil
}

// Flush waits until the server has processed all buffered messages
func (c *Client) Flush() error {
	return c.nc.Flush()
}

// Close drains pending messages and closes the connection
func (c *Client) Close() error {
	if c.nc == nil {
		return nil
	}
	return c.nc.Drain()
}
