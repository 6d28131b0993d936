package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("SETUP_CHANNEL_ID", "111111111111111111")
	t.Setenv("DATABASE_PATH", t.TempDir())
	t.Setenv("ADMIN_ID", "222222222222222222")
	t.Setenv("GUILD_ID", "333333333333333333")
	t.Setenv("APPLICATION_ID", "444444444444444444")
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	requiredEnv(t)

	config, err := loadConfig()

	req.NoError(err)
	req.Equal("badger", config.StoreDriver)
	req.Equal("INFO", config.LogLevel)
	req.Equal(256, config.EventBufferSize)
	req.Equal(time.Second, config.RestartInterval)
	req.Equal(time.Minute, config.MetricInterval)
	req.True(config.NameModeration)
	req.Equal("*", config.CensorCharacter)
}

func TestLoadConfig_Missing_Required(t *testing.T) {
	req := require.New(t)
	requiredEnv(t)
	t.Setenv("DISCORD_TOKEN", "")

	_, err := loadConfig()

	req.Error(err)
}

func TestLoadConfig_Rejects_Invalid_Values(t *testing.T) {
	tests := map[string]string{
		"SETUP_CHANNEL_ID": "setup",
		"STORE_DRIVER":     "postgres",
		"LOG_LEVEL":        "verbose",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			requiredEnv(t)
			t.Setenv(key, value)

			_, err := loadConfig()

			require.Error(t, err)
		})
	}
}

func TestLoadConfig_Lowercase_Level(t *testing.T) {
	req := require.New(t)
	requiredEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_DRIVER", "sqlite")

	config, err := loadConfig()

	req.NoError(err)
	req.Equal("DEBUG", config.LogLevel)
	req.Equal("sqlite", config.StoreDriver)
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("**")
	req.Error(err)
}

func TestRecordMapper(t *testing.T) {
	req := require.New(t)

	row := RecordMapper("channel:100", []byte("200"))

	req.Equal("CHANNEL", row.Type)
	req.Equal("100 -> 200", row.Detail)
}
