package irc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// transcoder converts message text between UTF-8 and the network's
// charset. A nil encoding means the network already speaks UTF-8 and
// both directions are pass-through.
type transcoder struct {
	enc encoding.Encoding
}

func newTranscoder(name string) (*transcoder, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return &transcoder{}, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", name)
	}
	return &transcoder{enc: enc}, nil
}

// decode turns inbound network bytes into UTF-8. Undecodable input is
// passed through rather than dropped.
func (t *transcoder) decode(s string) string {
	if t.enc == nil {
		return s
	}
	out, err := t.enc.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}

func (t *transcoder) encode(s string) string {
	if t.enc == nil {
		return s
	}
	out, err := t.enc.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return out
}
