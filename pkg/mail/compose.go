package mail

import (
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/hakaru-org/mailblast/pkg/charset"
)

var charsets = map[string]gomail.Charset{
	"US-ASCII":   gomail.CharsetASCII,
	"ISO-8859-1": gomail.CharsetISO88591,
	"UTF-8":      gomail.CharsetUTF8,
}

// Compose wraps msg into a MIME message. The first part becomes the body,
// every further part an alternative, in caller order; HTML parts are
// attached as text/html, everything else as text/plain. Each part gets
// the narrowest charset the policy allows.
func Compose(msg *Message, policy charset.Policy) (*gomail.Msg, error) {
	if len(msg.Parts) == 0 {
		return nil, ErrNoParts
	}

	m := gomail.NewMsg()
	if msg.FromName != "" {
		if err := m.FromFormat(msg.FromName, msg.From); err != nil {
			return nil, fmt.Errorf("invalid from address %q: %w", msg.From, err)
		}
	} else if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid to address %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)

	for i, p := range msg.Parts {
		candidate, err := policy.Choose(p.Body)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i+1, err)
		}

		body := p.Body
		if candidate.Encode != nil {
			if body, err = candidate.Encode(body); err != nil {
				return nil, fmt.Errorf("part %d: encode as %s: %w", i+1, candidate.Name, err)
			}
		}

		cs, ok := charsets[candidate.Name]
		if !ok {
			cs = gomail.Charset(candidate.Name)
		}

		contentType := gomail.TypeTextPlain
		if p.HTML {
			contentType = gomail.TypeTextHTML
		}

		if i == 0 {
			m.SetBodyString(contentType, body, gomail.WithPartCharset(cs))
		} else {
			m.AddAlternativeString(contentType, body, gomail.WithPartCharset(cs))
		}
	}

	return m, nil
}
