package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/zenith/internal/app"
	"github.com/alexanderramin/zenith/internal/cli"
	"github.com/alexanderramin/zenith/internal/db"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/alexanderramin/zenith/internal/repository"
	"github.com/alexanderramin/zenith/internal/server"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	logger := newLogger()
	ctx := context.Background()

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}

	client, err := llm.NewClient(ctx, llmCfg, observer)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(os.Getenv("ZENITH_GOAL_STORE"))
	if err != nil {
		return err
	}
	defer closeStore()

	session := app.NewSession(store, client)
	if envBool("ZENITH_SEED_DEMO") {
		if err := session.SeedDemoGoals(ctx); err != nil {
			return fmt.Errorf("seeding demo goals: %w", err)
		}
	}

	a := &cli.App{
		Session: session,
		Logger:  logger,
		Version: version,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		Serve: server.Serve(logger),
	}

	return cli.NewRootCmd(a).Execute()
}

func openStore(kind string) (*repository.Store, func(), error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "sqlite":
		conn, err := db.OpenDB()
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLiteStore(conn), func() { conn.Close() }, nil
	case "memory":
		return repository.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown ZENITH_GOAL_STORE %q (want sqlite or memory)", kind)
	}
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("ZENITH_LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func envBool(name string) bool {
	v, _ := strconv.ParseBool(os.Getenv(name))
	return v
}
