package model

import "time"

// PendingModal bridges a text command to a modal dialog. It lives in the
// registry until its relay button is clicked or it expires.
type PendingModal struct {
	Token          string
	Form           Form
	RequesterID    string
	RelayChannelID string
	RelayMessageID string
	CreatedAt      time.Time
}
