package main

import (
	"log"

	"scriptdesk/bot"
)

func main() {
	if err := bot.Start(); err != nil {
		log.Fatalf("scriptdesk: %v", err)
	}
}
