package irc

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lrstanley/girc"
	"github.com/slidesync/SlideBot/internal/container"
	"github.com/slidesync/SlideBot/internal/database/models"
	"github.com/slidesync/SlideBot/internal/delivery"
	"github.com/slidesync/SlideBot/internal/dispatch"
)

// event is anything the loop serializes: inbound chat traffic and
// lifecycle notices. Delivery results arrive on their own channel but
// are consumed by the same loop, which is what keeps session mutation
// single-threaded.
type event any

type messageEvent struct {
	from dispatch.Sender
	text string
}

type inviteEvent struct {
	channel string
}

type joinedEvent struct {
	channel string
}

type eventLoop struct {
	client     *girc.Client
	app        *container.AppContainer
	dispatcher *dispatch.Dispatcher
	codec      *transcoder
}

func (l *eventLoop) run(ctx context.Context, events <-chan event, results <-chan delivery.Result) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case messageEvent:
				l.handleMessage(ev)
			case inviteEvent:
				slog.Debug("invited", "channel", ev.channel)
				l.client.Cmd.Join(ev.channel)
			case joinedEvent:
				slog.Debug("joined", "channel", ev.channel)
				l.app.Sessions.OnJoin(ev.channel)
				l.app.Members.Add(ev.channel)
			}
		case res := <-results:
			l.handleResult(res)
		}
	}
}

func (l *eventLoop) handleMessage(ev messageEvent) {
	act := l.dispatcher.Dispatch(ev.text, ev.from)
	switch act.Kind {
	case dispatch.Reply:
		l.client.Cmd.Message(ev.from.Channel, l.codec.encode(act.Text))
	case dispatch.Leave:
		slog.Debug("leaving", "channel", ev.from.Channel)
		if !ev.from.Direct {
			l.client.Cmd.Part(ev.from.Channel)
		}
		l.app.Sessions.Drop(ev.from.Channel)
		l.app.Members.Remove(ev.from.Channel)
	}
}

func (l *eventLoop) handleResult(res delivery.Result) {
	l.app.Sessions.SetStatus(res.Channel, res.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rec := &models.DeliveryRecord{
		Channel:    strings.ToLower(res.Channel),
		URL:        res.URL,
		StatusCode: res.StatusCode,
	}
	if err := l.app.DeliveryRepo.Record(ctx, rec); err != nil {
		slog.Warn("delivery history not recorded", "err", err)
	}
}
