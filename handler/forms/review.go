package forms

import (
	"log"

	"scriptdesk/customid"

	"github.com/bwmarrin/discordgo"
)

const (
	approveColor = 0x00FF00
	denyColor    = 0xFF0000

	statusFieldName = "Status"
)

// DecisionHandler applies a moderator's approve/deny click to a moderation
// post: the status is appended to the live message's embed and the buttons
// are removed so the action cannot be repeated through the UI.
func (h *Handler) DecisionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	decision, err := customid.DecodeDecision(i.MessageComponentData().CustomID)
	if err != nil {
		log.Printf("Error decoding decision custom ID: %v", err)
		return
	}

	if i.Message == nil || len(i.Message.Embeds) == 0 {
		log.Printf("Decision interaction without a moderation embed, ignoring")
		return
	}

	embed := i.Message.Embeds[0]
	if AlreadyDecided(embed) {
		respondEphemeral(s, i, "This submission has already been decided.")
		return
	}

	updated := DecideEmbed(embed, decision.Action, interactionUser(i).Username)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{updated},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("Error updating moderation post: %v", err)
	}
}

// AlreadyDecided reports whether a moderation embed carries a status field.
func AlreadyDecided(embed *discordgo.MessageEmbed) bool {
	for _, f := range embed.Fields {
		if f.Name == statusFieldName {
			return true
		}
	}
	return false
}

// DecideEmbed returns a copy of a moderation embed with the decision
// recorded: recolored and with a status field appended. The live message
// remains the system of record; nothing is kept locally.
func DecideEmbed(embed *discordgo.MessageEmbed, action, moderator string) *discordgo.MessageEmbed {
	status := "✅ Approved by " + moderator
	color := approveColor
	if action == customid.ActionDeny {
		status = "❌ Denied by " + moderator
		color = denyColor
	}

	updated := *embed
	updated.Color = color
	updated.Fields = make([]*discordgo.MessageEmbedField, 0, len(embed.Fields)+1)
	updated.Fields = append(updated.Fields, embed.Fields...)
	updated.Fields = append(updated.Fields, &discordgo.MessageEmbedField{
		Name:  statusFieldName,
		Value: status,
	})
	return &updated
}
