package model

// FormVariant identifies one of the fixed form definitions.
type FormVariant string

const (
	VariantCommunity FormVariant = "community"
	VariantRequest   FormVariant = "request"
)

// FormField describes a single text input on a form.
type FormField struct {
	ID          string
	Label       string
	Paragraph   bool
	Required    bool
	MaxLength   int
	Placeholder string
}

// Form is an immutable form definition.
type Form struct {
	Variant FormVariant
	Title   string
	Fields  []FormField
}

// Both variants share the same three fields.
func sharedFields() []FormField {
	return []FormField{
		{
			ID:        "game_input",
			Label:     "What game are you submitting this for?",
			Required:  true,
			MaxLength: 100,
		},
		{
			ID:          "keyless_input",
			Label:       "Is this keyless?",
			Required:    true,
			MaxLength:   10,
			Placeholder: "Yes or No",
		},
		{
			ID:        "script_input",
			Label:     "Script:",
			Paragraph: true,
			Required:  true,
			MaxLength: 4000,
		},
	}
}

// FormByVariant returns the form definition for a variant.
func FormByVariant(v FormVariant) (Form, bool) {
	switch v {
	case VariantCommunity:
		return Form{Variant: v, Title: "Community Script", Fields: sharedFields()}, true
	case VariantRequest:
		return Form{Variant: v, Title: "Request Script", Fields: sharedFields()}, true
	}
	return Form{}, false
}

// Submission holds a completed form while it is projected into a
// moderation post. It is not retained afterwards.
type Submission struct {
	RequesterID   string
	RequesterName string
	AvatarURL     string
	FormTitle     string
	Game          string
	Keyless       string
	Script        string
}
