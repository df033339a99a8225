// Package customid encodes the structured payloads carried in Discord
// custom IDs. Every ID is a ":"-separated record whose first segment names
// the handler; handlers decode the rest here instead of slicing strings
// themselves.
package customid

import (
	"fmt"
	"strconv"
	"strings"

	"scriptdesk/model"

	"github.com/google/uuid"
)

const (
	PrefixOpenForm = "openform"
	PrefixDecision = "decision"
	PrefixForm     = "form"
)

// Decision actions.
const (
	ActionApprove = "approve"
	ActionDeny    = "deny"
)

// Relay is the payload of a relay button. Its encoded form doubles as the
// registry token for the pending modal it opens.
type Relay struct {
	Variant     model.FormVariant
	RequesterID string
	Nonce       string
}

// NewRelay builds a relay payload with a fresh nonce.
func NewRelay(variant model.FormVariant, requesterID string) Relay {
	return Relay{Variant: variant, RequesterID: requesterID, Nonce: uuid.New().String()}
}

func (r Relay) Encode() string {
	return strings.Join([]string{PrefixOpenForm, string(r.Variant), r.RequesterID, r.Nonce}, ":")
}

// DecodeRelay parses a relay button custom ID.
func DecodeRelay(id string) (Relay, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 4 || parts[0] != PrefixOpenForm {
		return Relay{}, fmt.Errorf("malformed relay custom ID: %q", id)
	}
	if _, ok := model.FormByVariant(model.FormVariant(parts[1])); !ok {
		return Relay{}, fmt.Errorf("unknown form variant in relay custom ID: %q", parts[1])
	}
	return Relay{Variant: model.FormVariant(parts[1]), RequesterID: parts[2], Nonce: parts[3]}, nil
}

// Decision is the payload of an approve/deny button. IssuedAt keeps IDs
// unique across submissions by the same requester.
type Decision struct {
	Action      string
	RequesterID string
	IssuedAt    int64
}

func (d Decision) Encode() string {
	return strings.Join([]string{PrefixDecision, d.Action, d.RequesterID, strconv.FormatInt(d.IssuedAt, 10)}, ":")
}

// DecodeDecision parses a decision button custom ID.
func DecodeDecision(id string) (Decision, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 4 || parts[0] != PrefixDecision {
		return Decision{}, fmt.Errorf("malformed decision custom ID: %q", id)
	}
	if parts[1] != ActionApprove && parts[1] != ActionDeny {
		return Decision{}, fmt.Errorf("unknown decision action: %q", parts[1])
	}
	ts, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("bad timestamp in decision custom ID: %q", parts[3])
	}
	return Decision{Action: parts[1], RequesterID: parts[2], IssuedAt: ts}, nil
}

// Modal is the payload of a modal dialog custom ID.
type Modal struct {
	Variant     model.FormVariant
	RequesterID string
}

func (m Modal) Encode() string {
	return strings.Join([]string{PrefixForm, string(m.Variant), m.RequesterID}, ":")
}

// DecodeModal parses a modal custom ID.
func DecodeModal(id string) (Modal, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 || parts[0] != PrefixForm {
		return Modal{}, fmt.Errorf("malformed modal custom ID: %q", id)
	}
	if _, ok := model.FormByVariant(model.FormVariant(parts[1])); !ok {
		return Modal{}, fmt.Errorf("unknown form variant in modal custom ID: %q", parts[1])
	}
	return Modal{Variant: model.FormVariant(parts[1]), RequesterID: parts[2]}, nil
}
