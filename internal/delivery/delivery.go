// Package delivery performs the outbound slide-change notifications.
// Each notify runs on its own goroutine so a slow sync server can never
// stall the chat event loop; the outcome comes back as a Result on the
// channel the bot's loop reads from.
package delivery

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/slidesync/SlideBot/internal/syncurl"
)

// Result is what a finished (or failed) notification reports back.
// StatusCode 0 means the request never got an HTTP response.
type Result struct {
	Channel    string
	URL        string
	StatusCode int
}

type Notifier struct {
	client  *http.Client
	results chan<- Result
}

// NewNotifier returns a notifier reporting into results. The HTTP
// timeout is a backstop so an unreachable endpoint cannot pin a
// goroutine forever; results of timed-out requests arrive as failures.
func NewNotifier(results chan<- Result) *Notifier {
	return &Notifier{
		client:  &http.Client{Timeout: 30 * time.Second},
		results: results,
	}
}

// Notify requests <endpoint>/<mappedChannel>?page=<slideRef> in the
// background and returns immediately. No retries: whatever happens is
// reported once.
func (n *Notifier) Notify(channel, endpoint, slideRef string) {
	url := endpoint + "/" + syncurl.MapChannel(channel) + "?page=" + slideRef
	go func() {
		status := 0
		resp, err := n.client.Get(url)
		if err != nil {
			slog.Debug("slide notification failed", "url", url, "err", err)
		} else {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			status = resp.StatusCode
		}
		slog.Debug("slide notification done", "url", url, "status", status)
		n.results <- Result{Channel: channel, URL: url, StatusCode: status}
	}()
}
