package main

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/infrastructure/discord"
	"dynamic-voice/infrastructure/storage"
	"dynamic-voice/moderation"
	"dynamic-voice/runtime"
	"dynamic-voice/runtime/workers"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Returning instead of exiting lets the deferred store and session cleanup run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := loadConfig()
	if err != nil {
		return exitConfig, err
	}
	censorChar, err := CharacterRune(config.CensorCharacter)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Store
	store, err := storage.Open(ctx, storage.Driver(config.StoreDriver), config.DatabasePath, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("store opening failed: %w", err)
	}
	defer func() { _ = store.Close() }()

	if badgerStore, ok := store.(*storage.BadgerStore); ok && logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(badgerStore.DB(), config.DebugPort, endpoint, RecordMapper)
	}

	// 4. Name moderation
	filter, err := newNameFilter(config.NameModeration, censorChar, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderation setup failed: %w", err)
	}

	// 5. Discord session
	session, err := discord.NewSession(config.DiscordToken)
	if err != nil {
		return exitConfig, fmt.Errorf("discord session: %w", err)
	}
	events := make(chan contract.Event, config.EventBufferSize)
	discord.NewGateway(logger, config.GuildID, events).Register(ctx, session)
	guild := discord.NewGuildWaiter(session, config.GuildID)

	if err := session.Open(); err != nil {
		return exitRuntime, fmt.Errorf("discord gateway connection failed: %w", err)
	}
	defer func() {
		logger.Info("Closing Discord session...")
		_ = session.Close()
	}()
	if err := guild.Wait(ctx, config.GuildTimeout); err != nil {
		return exitRuntime, err
	}
	if session.State.User != nil {
		logger.Info("Logged in", "user", session.State.User.Username, "guild_id", config.GuildID)
	}

	// 6. Registry (reconciles with the store before any event is consumed)
	platform := discord.NewPlatform(session, config.GuildID, logger)
	manager, err := runtime.NewManager(ctx, logger, platform, store, filter, runtime.Options{
		SetupChannelID: config.SetupChannelID,
	})
	if err != nil {
		return exitRuntime, fmt.Errorf("registry reconciliation failed: %w", err)
	}
	customNames := runtime.NewCustomNameHandler(logger, store, config.AdminID)

	// 7. Supervised workers
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewDispatcher(logger, events, manager, manager, customNames),
		workers.NewHealthMonitoringWorker(logger, manager, config.MetricInterval,
			workers.NamedChannel{Name: "events", Channel: events}),
	)

	logger.Info("Bot is running", "setup_channel_id", config.SetupChannelID, "rooms", manager.Len())
	sup.Run(ctx)

	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func loadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func newNameFilter(enabled bool, censorChar rune, logger *slog.Logger) (contract.NameFilter, error) {
	if !enabled {
		return moderation.Passthrough{}, nil
	}
	moderator, err := moderation.NewDefaultModerator(censorChar, logger)
	if err != nil {
		return nil, err
	}
	return moderator, nil
}

// RecordMapper labels the inspector rows with the table each key belongs to.
func RecordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	table, id, found := strings.Cut(key, ":")
	if !found {
		return row
	}
	row.Type = strings.ToUpper(table)
	row.Detail = id + " -> " + string(val)
	return row
}
