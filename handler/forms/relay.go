package forms

import (
	"log"

	"scriptdesk/customid"
	"scriptdesk/model"

	"github.com/bwmarrin/discordgo"
)

// RelayButtonHandler opens the pending modal behind a relay button. This is
// the only point a modal can legally be shown: Discord requires a fresh
// interaction, which is why the button exists at all.
func (h *Handler) RelayButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	token := i.MessageComponentData().CustomID
	if _, err := customid.DecodeRelay(token); err != nil {
		log.Printf("Error decoding relay custom ID: %v", err)
		respondEphemeral(s, i, "An error occurred while processing your request.")
		return
	}

	entry, ok := h.reg.Consume(token)
	if !ok {
		respondEphemeral(s, i, "This form has expired. Please use the command again.")
		return
	}

	modalID := customid.Modal{
		Variant:     entry.Form.Variant,
		RequesterID: interactionUser(i).ID,
	}.Encode()

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   modalID,
			Title:      entry.Form.Title,
			Components: modalComponents(entry.Form),
		},
	})
	if err != nil {
		log.Printf("Error showing modal for token %s: %v", token, err)
	}
}

// modalComponents renders a form definition as modal text inputs, one
// action row per field.
func modalComponents(form model.Form) []discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, len(form.Fields))
	for _, f := range form.Fields {
		style := discordgo.TextInputShort
		if f.Paragraph {
			style = discordgo.TextInputParagraph
		}
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    f.ID,
					Label:       f.Label,
					Style:       style,
					Required:    f.Required,
					MaxLength:   f.MaxLength,
					Placeholder: f.Placeholder,
				},
			},
		})
	}
	return components
}
