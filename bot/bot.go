package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"scriptdesk/config"
	"scriptdesk/handler"
	"scriptdesk/handler/forms"
	"scriptdesk/model"
	"scriptdesk/registry"

	"github.com/bwmarrin/discordgo"
)

var dg *discordgo.Session

// Start loads configuration, connects to Discord and blocks until the
// process receives an interrupt.
func Start() error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if config.Cfg.Token == "" {
		return fmt.Errorf("bot token is empty; set TOKEN in config.yaml or the environment")
	}
	if config.Cfg.ScriptBot.ModsChannelID == "" {
		log.Printf("Warning: mods channel ID is not configured, submissions will be rejected")
	}

	var err error
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}

	reg := registry.New(
		config.Cfg.ScriptBot.PendingTTL,
		config.Cfg.ScriptBot.MaxPending,
		deleteRelayMessage,
	)

	router := handler.NewRouter()
	formsHandler := forms.New(config.Cfg.ScriptBot, reg)
	formsHandler.Register(router)

	dg.AddHandler(router.OnInteractionCreate)
	dg.AddHandler(formsHandler.OnMessageCreate)

	// Prefix commands need message content in addition to the guild and
	// message events.
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	if err := dg.Open(); err != nil {
		return fmt.Errorf("opening connection: %w", err)
	}

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return dg.Close()
}

// deleteRelayMessage removes the relay message of an expired or evicted
// registry entry. Best-effort: failures are logged, never escalated.
func deleteRelayMessage(entry model.PendingModal) {
	if entry.RelayMessageID == "" {
		return
	}
	if err := dg.ChannelMessageDelete(entry.RelayChannelID, entry.RelayMessageID); err != nil {
		log.Printf("Error deleting expired relay message %s: %v", entry.RelayMessageID, err)
	}
}
