package mail

import (
	"context"
	"errors"
)

// ErrNoParts indicates a message was composed without any body part.
var ErrNoParts = errors.New("message has no body parts")

// Part is one body of a message, plain text or HTML.
type Part struct {
	Body string
	HTML bool
}

// Message represents one personalized email ready for composition. To is
// a single bare address; FromName, when set, becomes the display name of
// the From header.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	Parts    []Part
}

// Mailer owns one delivery session for the lifetime of a run.
type Mailer interface {
	// Dial establishes the session. Must be called once before Send.
	Dial(ctx context.Context) error
	// Send delivers one message over the established session.
	Send(ctx context.Context, msg *Message) error
	// Close tears the session down.
	Close() error
}
