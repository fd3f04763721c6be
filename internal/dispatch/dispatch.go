// Package dispatch classifies inbound chat lines and turns them into
// reply actions. The rules form an ordered table: the first match wins,
// and later rules rely on earlier ones not having matched.
package dispatch

import (
	"regexp"
	"strings"

	"github.com/slidesync/SlideBot/internal/session"
	"github.com/slidesync/SlideBot/pkg/parser"
)

// Sender describes where a line came from. For a private session
// Channel holds the peer's nick, which doubles as the session key.
type Sender struct {
	Nick    string
	Channel string
	Direct  bool
}

type Kind int

const (
	NoReply Kind = iota
	Reply
	Leave
)

// Action is what the transport should do with the dispatch outcome.
type Action struct {
	Kind Kind
	Text string
}

func reply(text string) Action {
	return Action{Kind: Reply, Text: text}
}

// Notifier is the async delivery subsystem as the dispatcher sees it.
type Notifier interface {
	Notify(channel, endpoint, slideRef string)
}

var (
	slidesetRe = regexp.MustCompile(`(?i)^\s*slideset\s*:\s*(.+?)\s*$`)
	slideRe    = regexp.MustCompile(`(?i)^\s*\[\s*slide\s+(\d+|\+\+|[$^-])\s*\]\s*$`)
	pleaseRe   = regexp.MustCompile(`(?i)^please\b,?\s*`)
	useRe      = regexp.MustCompile(`(?i)^use\s+(.+?)\s*$`)
	syncURLRe  = regexp.MustCompile(`(?i)^https?://\S+$`)
)

type Dispatcher struct {
	nick      string
	sessions  *session.Store
	notifier  Notifier
	addressRe *regexp.Regexp
}

func New(nick string, sessions *session.Store, notifier Notifier) *Dispatcher {
	return &Dispatcher{
		nick:     nick,
		sessions: sessions,
		notifier: notifier,
		// "mybot: ..." or "mybot, ..." counts as addressed to us.
		addressRe: regexp.MustCompile(`(?i)^\s*` + regexp.QuoteMeta(nick) + `\s*[:,]\s*`),
	}
}

// Dispatch runs the rule table against one inbound line.
func (d *Dispatcher) Dispatch(line string, from Sender) Action {
	text := line
	addressed := from.Direct
	if m := d.addressRe.FindStringIndex(text); m != nil {
		text = text[m[1]:]
		addressed = true
	}

	// Announcements and slide directives are watched in channels no
	// matter who they were addressed to, but never in private chats.
	if !from.Direct {
		if m := slidesetRe.FindStringSubmatch(text); m != nil {
			return d.announceSlideset(from.Channel, m[1])
		}
		if m := slideRe.FindStringSubmatch(text); m != nil {
			return d.notifySlide(from.Channel, m[1])
		}
	}

	if !addressed {
		// Not ours; the transport's default behavior takes over.
		return Action{}
	}

	text = strings.TrimSpace(text)
	text = pleaseRe.ReplaceAllString(text, "")

	if m := useRe.FindStringSubmatch(text); m != nil {
		return d.useEndpoint(from.Channel, m[1])
	}

	// Politeness tax: people end commands with "." or "?".
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "?") {
		text = strings.TrimSpace(text[:len(text)-1])
	}

	switch {
	case strings.EqualFold(text, "status"):
		return d.status(from.Channel)
	case strings.EqualFold(text, "bye"):
		return Action{Kind: Leave}
	case hasFoldPrefix(text, "help"):
		return reply(parser.GetMessage("help", nil))
	}

	if from.Direct {
		return reply(parser.GetMessage("fallback-private", nil))
	}
	return reply(parser.GetMessage("fallback-channel", map[string]string{"nick": d.nick}))
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
