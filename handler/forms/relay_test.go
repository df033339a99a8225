package forms

import (
	"testing"
	"time"

	"scriptdesk/model"
	"scriptdesk/registry"

	"github.com/bwmarrin/discordgo"
)

func TestRelayButtonMalformedIDAnswersInteraction(t *testing.T) {
	s, ft := newTestSession(t)
	reg := registry.New(time.Minute, 8, nil)
	h := New(model.ScriptBot{Prefix: "."}, reg)

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "interaction-1",
		Token:  "interaction-token",
		Type:   discordgo.InteractionMessageComponent,
		Member: &discordgo.Member{User: &discordgo.User{ID: "123456", Username: "someuser"}},
		Data:   discordgo.MessageComponentInteractionData{CustomID: "openform:community:123456"},
	}}

	h.RelayButtonHandler(s, i)

	callbacks := ft.pathsContaining("/callback")
	if len(callbacks) != 1 {
		t.Fatalf("interaction callbacks = %d, want 1", len(callbacks))
	}

	cb := decodeCallback(t, callbacks[0].body)
	if cb.Data.Content != "An error occurred while processing your request." {
		t.Errorf("callback content = %q", cb.Data.Content)
	}
	if cb.Data.Flags&int(discordgo.MessageFlagsEphemeral) == 0 {
		t.Errorf("callback flags = %d, want ephemeral bit set", cb.Data.Flags)
	}
}

func TestRelayButtonMissingEntryRepliesExpired(t *testing.T) {
	s, ft := newTestSession(t)
	reg := registry.New(time.Minute, 8, nil)
	h := New(model.ScriptBot{Prefix: "."}, reg)

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "interaction-1",
		Token:  "interaction-token",
		Type:   discordgo.InteractionMessageComponent,
		Member: &discordgo.Member{User: &discordgo.User{ID: "123456", Username: "someuser"}},
		Data:   discordgo.MessageComponentInteractionData{CustomID: "openform:community:123456:nonce"},
	}}

	h.RelayButtonHandler(s, i)

	callbacks := ft.pathsContaining("/callback")
	if len(callbacks) != 1 {
		t.Fatalf("interaction callbacks = %d, want 1", len(callbacks))
	}

	cb := decodeCallback(t, callbacks[0].body)
	if cb.Data.Content != "This form has expired. Please use the command again." {
		t.Errorf("callback content = %q", cb.Data.Content)
	}
}
