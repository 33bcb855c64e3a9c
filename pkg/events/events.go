// Package events announces saved records to interested parties.
package events

import "github.com/bokol-ooch/temporizadores/pkg/model"

// Publisher announces a record that has just been persisted
type Publisher interface {
	Publish(m *model.Record) error
}

// Subscriber delivers the raw payload of every announced record to fn
// until the returned unsubscribe function is called.
type Subscriber interface {
	Subscribe(fn func(data []byte)) (unsubscribe func() error, err error)
}

// Nop is used when no event transport is configured
type Nop struct{}

// Publish discards the record
func (Nop) Publish(*model.Record) error {
	return nil
}
