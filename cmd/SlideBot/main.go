package main

import (
	"log"

	"github.com/slidesync/SlideBot/internal/database"
	"github.com/slidesync/SlideBot/internal/irc"
	"github.com/slidesync/SlideBot/pkg/config"
	"github.com/slidesync/SlideBot/pkg/logger"
)

func main() {
	config.Load()
	logger.Setup(config.Verbose)

	db := database.InitDB()
	if err := irc.StartBot(db); err != nil {
		log.Fatal(err)
	}
}
