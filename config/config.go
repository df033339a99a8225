package config

import (
	"time"

	"scriptdesk/model"

	"github.com/spf13/viper"
)

var Cfg model.Config

// LoadConfig reads config.yaml from the working directory, layered with
// environment variables, and unmarshals it into Cfg.
func LoadConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("scriptBot.prefix", ".")
	viper.SetDefault("scriptBot.pending_ttl", 5*time.Minute)
	viper.SetDefault("scriptBot.max_pending", 64)

	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	return viper.Unmarshal(&Cfg)
}
