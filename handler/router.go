package handler

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandlerFunc handles a single interaction.
type HandlerFunc func(s *discordgo.Session, i *discordgo.InteractionCreate)

// Router dispatches interactions to registered handlers. Component and
// modal custom IDs are routed on their first ":" segment.
type Router struct {
	componentHandlers map[string]HandlerFunc
	modalHandlers     map[string]HandlerFunc
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		componentHandlers: make(map[string]HandlerFunc),
		modalHandlers:     make(map[string]HandlerFunc),
	}
}

// AddComponentHandler registers a handler for a message component prefix.
func (r *Router) AddComponentHandler(prefix string, h HandlerFunc) {
	r.componentHandlers[prefix] = h
}

// AddModalHandler registers a handler for a modal submission prefix.
func (r *Router) AddModalHandler(prefix string, h HandlerFunc) {
	r.modalHandlers[prefix] = h
}

// OnInteractionCreate is the main interaction router. Register it as the
// session's interaction handler.
func (r *Router) OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		if h, ok := r.componentHandlers[keyOf(i.MessageComponentData().CustomID)]; ok {
			dispatch(h, s, i)
		}
	case discordgo.InteractionModalSubmit:
		if h, ok := r.modalHandlers[keyOf(i.ModalSubmitData().CustomID)]; ok {
			dispatch(h, s, i)
		}
	}
}

// dispatch runs a handler with a top-level guard: a panic is logged and
// answered with a generic failure notice instead of taking the process
// down. The respond call fails harmlessly if the interaction was already
// answered.
func dispatch(h HandlerFunc, s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in interaction handler: %v", r)
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "An error occurred while processing your request.",
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		}
	}()
	h(s, i)
}

func keyOf(customID string) string {
	parts := strings.SplitN(customID, ":", 2)
	return parts[0]
}
