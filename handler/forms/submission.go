package forms

import (
	"fmt"
	"log"
	"time"

	"scriptdesk/customid"
	"scriptdesk/model"

	"github.com/bwmarrin/discordgo"
)

// scriptFieldLimit is Discord's display limit for an embed field value.
// Longer script bodies are truncated for display; the full text is not
// preserved anywhere else.
const scriptFieldLimit = 1024

// ModalSubmitHandler turns a completed form into a moderation channel post
// with approve/deny controls.
func (h *Handler) ModalSubmitHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()

	payload, err := customid.DecodeModal(data.CustomID)
	if err != nil {
		log.Printf("Error decoding modal custom ID: %v", err)
		respondEphemeral(s, i, "An error occurred while processing your request.")
		return
	}

	form, ok := model.FormByVariant(payload.Variant)
	if !ok {
		log.Printf("Unknown form variant %q in modal submission", payload.Variant)
		respondEphemeral(s, i, "An error occurred while processing your request.")
		return
	}

	user := interactionUser(i)
	sub := model.Submission{
		RequesterID:   user.ID,
		RequesterName: user.Username,
		AvatarURL:     user.AvatarURL(""),
		FormTitle:     form.Title,
		Game:          textInputValue(data, "game_input"),
		Keyless:       textInputValue(data, "keyless_input"),
		Script:        textInputValue(data, "script_input"),
	}

	if h.cfg.ModsChannelID == "" {
		log.Printf("Mods channel not configured, dropping submission from %s", sub.RequesterID)
		respondEphemeral(s, i, "Error: Could not find the moderators channel.")
		return
	}

	if _, err := s.ChannelMessageSendComplex(h.cfg.ModsChannelID, BuildModerationMessage(sub, time.Now())); err != nil {
		log.Printf("Error sending submission from %s to mods channel: %v", sub.RequesterID, err)
		respondEphemeral(s, i, "Error: Could not find the moderators channel.")
		return
	}

	respondEphemeral(s, i, "Your form has been submitted successfully! Moderators will review it shortly.")
}

// textInputValue extracts a text input value from modal submission data.
func textInputValue(data discordgo.ModalSubmitInteractionData, id string) string {
	for _, component := range data.Components {
		if row, ok := component.(*discordgo.ActionsRow); ok {
			for _, comp := range row.Components {
				if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == id {
					return input.Value
				}
			}
		}
	}
	return ""
}

// BuildModerationMessage renders a submission as the moderation channel
// post: an embed with the answers plus approve/deny buttons.
func BuildModerationMessage(sub model.Submission, now time.Time) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: sub.FormTitle + " Submission",
		Color: 0x0099FF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", sub.RequesterName, sub.RequesterID)},
			{Name: "What game are you submitting this for?", Value: sub.Game},
			{Name: "Is this keyless?", Value: sub.Keyless},
			{Name: "Script:", Value: TruncateScript(sub.Script)},
		},
		Timestamp: now.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Submitted by " + sub.RequesterName,
			IconURL: sub.AvatarURL,
		},
	}

	issuedAt := now.UnixMilli()
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Approve",
					Style:    discordgo.SuccessButton,
					CustomID: customid.Decision{Action: customid.ActionApprove, RequesterID: sub.RequesterID, IssuedAt: issuedAt}.Encode(),
				},
				discordgo.Button{
					Label:    "Deny",
					Style:    discordgo.DangerButton,
					CustomID: customid.Decision{Action: customid.ActionDeny, RequesterID: sub.RequesterID, IssuedAt: issuedAt}.Encode(),
				},
			},
		},
	}

	return &discordgo.MessageSend{
		Embed:      embed,
		Components: components,
	}
}

// TruncateScript caps a script body at the embed field display limit,
// marking the cut with an ellipsis.
func TruncateScript(script string) string {
	runes := []rune(script)
	if len(runes) <= scriptFieldLimit {
		return script
	}
	return string(runes[:scriptFieldLimit-3]) + "..."
}
