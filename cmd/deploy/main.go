package main

import (
	"context"
	"dynamic-voice/infrastructure/discord"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

// Config holds what the command registration needs, nothing more.
type Config struct {
	DiscordToken  string        `envconfig:"DISCORD_TOKEN" required:"true"`
	ApplicationID string        `envconfig:"APPLICATION_ID" required:"true"`
	GuildID       string        `envconfig:"GUILD_ID" required:"true"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"INFO"`
	Timeout       time.Duration `envconfig:"DEPLOY_TIMEOUT" default:"30s"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Deploy failed: %v\n", err)
		os.Exit(1)
	}
}

// run replaces the guild's application commands with the bot's command set.
func run() error {
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return fmt.Errorf("discord session: %w", err)
	}

	commands := discord.Commands()
	log.Info(fmt.Sprintf("Started refreshing %d application commands.", len(commands)))
	deployed, err := session.ApplicationCommandBulkOverwrite(config.ApplicationID, config.GuildID, commands, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk overwrite: %w", err)
	}
	log.Info(fmt.Sprintf("Successfully reloaded %d application commands.", len(deployed)))
	return nil
}
