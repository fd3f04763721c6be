package irc

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lrstanley/girc"
	"github.com/slidesync/SlideBot/internal/api"
	"github.com/slidesync/SlideBot/internal/container"
	"github.com/slidesync/SlideBot/internal/delivery"
	"github.com/slidesync/SlideBot/internal/dispatch"
	"github.com/slidesync/SlideBot/internal/membership"
	"github.com/slidesync/SlideBot/internal/session"
	"github.com/slidesync/SlideBot/pkg/config"
	"gorm.io/gorm"
)

// StartBot connects to the chat server and runs until interrupted.
// Everything that mutates session state funnels through one event loop
// goroutine; the girc handlers only translate protocol events and push
// them onto the loop's channel.
func StartBot(db *gorm.DB) error {
	srv, err := ParseServerURI(config.ServerURI)
	if err != nil {
		return err
	}
	codec, err := newTranscoder(config.Charset)
	if err != nil {
		return err
	}

	members, err := membership.Load(config.RejoinFile)
	if err != nil {
		return err
	}
	sessions := session.NewStore(config.DefaultSyncURL)
	app := container.NewAppContainer(db, sessions, members)

	results := make(chan delivery.Result, 16)
	notifier := delivery.NewNotifier(results)
	events := make(chan event, 64)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	user := srv.User
	if user == "" {
		user = config.Nick
	}
	cfg := girc.Config{
		Server:     srv.Host,
		Port:       srv.Port,
		Nick:       config.Nick,
		User:       user,
		Name:       config.RealName,
		SSL:        srv.TLS,
		ServerPass: srv.Password,
	}
	if srv.TLS {
		cfg.TLSConfig = &tls.Config{
			ServerName:         srv.Host,
			InsecureSkipVerify: config.InsecureTLS,
		}
	}
	client := girc.New(cfg)

	client.Handlers.Add(girc.CONNECTED, func(c *girc.Client, e girc.Event) {
		slog.Info("connected", "server", srv.Host, "nick", c.GetNick())
		if srv.Channel != "" {
			c.Cmd.Join(srv.Channel)
		}
		for _, ch := range members.Channels() {
			c.Cmd.Join(ch)
		}
	})

	client.Handlers.Add(girc.INVITE, func(c *girc.Client, e girc.Event) {
		events <- inviteEvent{channel: e.Last()}
	})

	client.Handlers.Add(girc.JOIN, func(c *girc.Client, e girc.Event) {
		if e.Source == nil || len(e.Params) == 0 {
			return
		}
		if e.Source.Name == c.GetNick() {
			events <- joinedEvent{channel: e.Params[0]}
		}
	})

	client.Handlers.Add(girc.PRIVMSG, func(c *girc.Client, e girc.Event) {
		if e.Source == nil || len(e.Params) < 2 {
			return
		}
		from := dispatch.Sender{
			Nick:    e.Source.Name,
			Channel: e.Params[0],
			Direct:  !e.IsFromChannel(),
		}
		if from.Direct {
			// Replies to a private message go back to the sender.
			from.Channel = e.Source.Name
		}
		events <- messageEvent{from: from, text: codec.decode(e.Last())}
	})

	if config.APIAddr != "" {
		go func() {
			if err := api.StartApi(ctx, app); err != nil {
				slog.Warn("status API stopped", "err", err)
			}
		}()
	}

	loop := &eventLoop{
		client:     client,
		app:        app,
		dispatcher: dispatch.New(config.Nick, sessions, notifier),
		codec:      codec,
	}
	go loop.run(ctx, events, results)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		client.Close()
	}()

	if err := client.Connect(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("irc connection: %w", err)
	}
	return nil
}
