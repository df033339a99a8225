package forms

import (
	"fmt"
	"log"
	"strings"

	"scriptdesk/customid"
	"scriptdesk/model"

	"github.com/bwmarrin/discordgo"
)

// OnMessageCreate recognizes the two form commands. Messages from bots or
// without the prefix are ignored entirely, as are unknown prefixed
// commands.
func (h *Handler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic handling command %q: %v", m.Content, r)
			s.ChannelMessageSendReply(m.ChannelID, "An error occurred while processing your command.", m.Reference())
		}
	}()

	variant, ok := parseCommand(m.Content, h.cfg.Prefix)
	if !ok {
		return
	}

	if err := h.issueForm(s, m, variant); err != nil {
		log.Printf("Error handling command %q from %s: %v", m.Content, m.Author.ID, err)
		if _, err := s.ChannelMessageSendReply(m.ChannelID, "An error occurred while processing your command.", m.Reference()); err != nil {
			log.Printf("Error sending command failure notice: %v", err)
		}
	}
}

// parseCommand maps prefixed message text to a form variant. The command
// word is case-insensitive; arguments after it are ignored.
func parseCommand(content, prefix string) (model.FormVariant, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", false
	}

	fields := strings.Fields(content[len(prefix):])
	if len(fields) == 0 {
		return "", false
	}

	switch strings.ToLower(fields[0]) {
	case "form1":
		return model.VariantCommunity, true
	case "form2":
		return model.VariantRequest, true
	}
	return "", false
}

// issueForm registers a pending modal and posts the relay message carrying
// the button that opens it.
func (h *Handler) issueForm(s *discordgo.Session, m *discordgo.MessageCreate, variant model.FormVariant) error {
	form, ok := model.FormByVariant(variant)
	if !ok {
		return fmt.Errorf("no form for variant %q", variant)
	}

	token := customid.NewRelay(variant, m.Author.ID).Encode()
	h.reg.Register(model.PendingModal{
		Token:       token,
		Form:        form,
		RequesterID: m.Author.ID,
	})

	msg, err := s.ChannelMessageSendComplex(m.ChannelID, BuildRelayMessage(form, token))
	if err != nil {
		// The entry is useless without its button; drop it now rather
		// than waiting out the TTL.
		h.reg.Consume(token)
		return fmt.Errorf("sending relay message: %w", err)
	}

	h.reg.SetRelayMessage(token, msg.ChannelID, msg.ID)
	return nil
}

// BuildRelayMessage constructs the relay message for a form: one line of
// text and a single button whose custom ID is the registry token.
func BuildRelayMessage(form model.Form, token string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("Click the button below to open the %s form:", form.Title),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    fmt.Sprintf("Open %s Form", form.Title),
						Style:    discordgo.PrimaryButton,
						CustomID: token,
					},
				},
			},
		},
	}
}
