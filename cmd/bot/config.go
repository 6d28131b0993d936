package main

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	DiscordToken    string        `env:"DISCORD_TOKEN,required=true" validate:"required"`
	SetupChannelID  string        `env:"SETUP_CHANNEL_ID,required=true" validate:"required,numeric"`
	DatabasePath    string        `env:"DATABASE_PATH,required=true" validate:"required"`
	AdminID         string        `env:"ADMIN_ID,required=true" validate:"required,numeric"`
	GuildID         string        `env:"GUILD_ID,required=true" validate:"required,numeric"`
	ApplicationID   string        `env:"APPLICATION_ID,required=true" validate:"required,numeric"`
	StoreDriver     string        `env:"STORE_DRIVER,default=badger" validate:"oneof=badger sqlite"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	EventBufferSize int           `env:"EVENT_BUFFER_SIZE,default=256" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=1m" validate:"gt=0"`
	GuildTimeout    time.Duration `env:"GUILD_TIMEOUT,default=30s" validate:"gt=0"`
	NameModeration  bool          `env:"NAME_MODERATION,default=true"`
	CensorCharacter string        `env:"CENSOR_CHARACTER,default=*"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081" validate:"min=1,max=65535"`
}

// Validate checks the values the environment parser cannot: snowflake IDs, enums and ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// CharacterRune returns the single rune used to mask censored words.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
