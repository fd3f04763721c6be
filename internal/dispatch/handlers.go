package dispatch

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/slidesync/SlideBot/internal/syncurl"
	"github.com/slidesync/SlideBot/pkg/parser"
)

// announceSlideset rewrites the announced deck URL so viewers open it
// with the channel's sync parameter attached. A fresh announcement also
// invalidates whatever delivery status the previous deck left behind.
func (d *Dispatcher) announceSlideset(channel, slidesURL string) Action {
	endpoint := d.sessions.Endpoint(channel)
	composed := syncurl.Compose(slidesURL, endpoint, channel)
	d.sessions.ClearStatus(channel)
	slog.Debug("slideset announced", "channel", channel, "url", composed)
	return reply(parser.GetMessage("slideset-announce", map[string]string{"url": composed}))
}

// notifySlide hands the slide reference to the async delivery
// subsystem. The token is forwarded verbatim; only the sync server
// knows what "++" or "$" mean.
func (d *Dispatcher) notifySlide(channel, slideRef string) Action {
	d.notifier.Notify(channel, d.sessions.Endpoint(channel), slideRef)
	return Action{}
}

func (d *Dispatcher) useEndpoint(channel, arg string) Action {
	if !syncURLRe.MatchString(arg) {
		return reply(parser.GetMessage("use-invalid", map[string]string{"arg": arg}))
	}
	d.sessions.SetEndpoint(channel, arg)
	return reply(parser.GetMessage("use-ack", map[string]string{
		"url":     arg,
		"channel": channel,
	}))
}

func (d *Dispatcher) status(channel string) Action {
	endpoint := d.sessions.Endpoint(channel)
	code, ok := d.sessions.Status(channel)
	if !ok {
		return reply(parser.GetMessage("status-plain", map[string]string{
			"url":     endpoint,
			"channel": channel,
		}))
	}
	return reply(parser.GetMessage("status-last", map[string]string{
		"url":     endpoint,
		"channel": channel,
		"status":  statusText(code),
	}))
}

func statusText(code int) string {
	if code == 0 {
		return "connection failed"
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return strconv.Itoa(code)
}
