package model

import "time"

// Config is the top-level structure of config.yaml.
type Config struct {
	Token     string    `mapstructure:"TOKEN"`
	ScriptBot ScriptBot `mapstructure:"scriptBot"`
}

// ScriptBot holds the "scriptBot" section.
type ScriptBot struct {
	Prefix        string        `mapstructure:"prefix"`
	ModsChannelID string        `mapstructure:"mods_channel_id"`
	PendingTTL    time.Duration `mapstructure:"pending_ttl"`
	MaxPending    int           `mapstructure:"max_pending"`
}
