package irc

import (
	"context"
	"strings"
	"testing"

	"github.com/slidesync/SlideBot/internal/container"
	"github.com/slidesync/SlideBot/internal/delivery"
	"github.com/slidesync/SlideBot/internal/dispatch"
	"github.com/slidesync/SlideBot/internal/session"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/slidesync/SlideBot/internal/database/models"
)

func newTestLoop(t *testing.T) (*eventLoop, *session.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.DeliveryRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sessions := session.NewStore("https://sync.example/sse")
	app := container.NewAppContainer(db, sessions, nil)
	codec, _ := newTranscoder("")
	return &eventLoop{
		app:        app,
		dispatcher: dispatch.New("slidebot", sessions, delivery.NewNotifier(make(chan delivery.Result, 1))),
		codec:      codec,
	}, sessions
}

func TestDeliveryResultUpdatesSessionAndHistory(t *testing.T) {
	loop, sessions := newTestLoop(t)

	loop.handleResult(delivery.Result{
		Channel:    "#Room",
		URL:        "https://sync.example/sse/0room?page=5",
		StatusCode: 200,
	})

	if code, ok := sessions.Status("#room"); !ok || code != 200 {
		t.Errorf("session status = %d, %v, want 200, true", code, ok)
	}

	recs, err := loop.app.DeliveryRepo.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 1 || recs[0].Channel != "#room" || recs[0].StatusCode != 200 {
		t.Errorf("history = %+v, want one #room record with status 200", recs)
	}
}

func TestStatusAfterSuccessfulDeliveryReportsOK(t *testing.T) {
	loop, _ := newTestLoop(t)

	loop.handleResult(delivery.Result{
		Channel:    "#room",
		URL:        "https://sync.example/sse/0room?page=5",
		StatusCode: 200,
	})

	act := loop.dispatcher.Dispatch("slidebot: status", dispatch.Sender{Nick: "alice", Channel: "#room"})
	if act.Kind != dispatch.Reply {
		t.Fatalf("status action = %+v, want a reply", act)
	}
	if !strings.Contains(act.Text, "https://sync.example/sse") || !strings.Contains(act.Text, "OK") {
		t.Errorf("status reply = %q, want endpoint and OK", act.Text)
	}
}

func TestLatestCompletionWins(t *testing.T) {
	loop, sessions := newTestLoop(t)

	loop.handleResult(delivery.Result{Channel: "#room", URL: "u1", StatusCode: 200})
	loop.handleResult(delivery.Result{Channel: "#room", URL: "u2", StatusCode: 502})

	if code, _ := sessions.Status("#room"); code != 502 {
		t.Errorf("status = %d, want 502 from the most recently completed delivery", code)
	}
}
