// Package forms implements the submission workflow: prefix commands that
// issue relay buttons, the modal dialogs behind them, and the moderation
// channel's approve/deny controls.
package forms

import (
	"log"

	"scriptdesk/customid"
	"scriptdesk/handler"
	"scriptdesk/model"
	"scriptdesk/registry"

	"github.com/bwmarrin/discordgo"
)

// Handler holds the components the form workflow needs. One instance is
// constructed at startup and wired into the router.
type Handler struct {
	cfg model.ScriptBot
	reg *registry.Registry
}

// New creates a forms handler.
func New(cfg model.ScriptBot, reg *registry.Registry) *Handler {
	return &Handler{cfg: cfg, reg: reg}
}

// Register wires the interaction handlers into the router.
func (h *Handler) Register(r *handler.Router) {
	r.AddComponentHandler(customid.PrefixOpenForm, h.RelayButtonHandler)
	r.AddComponentHandler(customid.PrefixDecision, h.DecisionHandler)
	r.AddModalHandler(customid.PrefixForm, h.ModalSubmitHandler)
}

// interactionUser returns the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending ephemeral response: %v", err)
	}
}
