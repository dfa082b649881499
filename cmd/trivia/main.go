package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rpedroni/project-luca-car-trivia/internal/config"
	"github.com/rpedroni/project-luca-car-trivia/internal/delivery/httpapi"
	"github.com/rpedroni/project-luca-car-trivia/internal/delivery/telegram"
	"github.com/rpedroni/project-luca-car-trivia/internal/infra/postgres"
	pgrepo "github.com/rpedroni/project-luca-car-trivia/internal/infra/postgres/repository"
	"github.com/rpedroni/project-luca-car-trivia/internal/logger"
	"github.com/rpedroni/project-luca-car-trivia/internal/repository"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
	"github.com/rpedroni/project-luca-car-trivia/internal/storage"
)

func main() {
	seedCatalog := flag.Bool("seed-catalog", false, "upsert the JSON catalog into PostgreSQL and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, lg, *seedCatalog); err != nil {
		lg.Fatal("application error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger, seedOnly bool) error {
	// The database is optional unless the catalog lives there.
	var (
		tr      *postgres.Transactor
		players service.PlayerRepository
	)
	if dsn, err := cfg.DB.DSN(); err == nil {
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return err
		}
		defer pool.Close()

		tr = postgres.NewTransactor(pool)
		players = pgrepo.NewPlayerRepository(pool)
	} else if seedOnly {
		return err
	}

	if seedOnly {
		catalog, err := repository.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		return service.NewCatalogStore(tr, lg).Seed(ctx, catalog)
	}

	catalog, err := loadCatalog(ctx, cfg, tr, lg)
	if err != nil {
		return err
	}
	lg.Info("catalog ready",
		zap.Int("brands", len(catalog.AllBrands())),
		zap.Int("cars", len(catalog.AllCars())),
	)

	factory := service.NewSessionFactory(
		catalog,
		cfg.Game.SessionConfig(),
		service.RealScheduler{},
		cfg.Game.PlayerName,
		cfg.Game.Seed,
		lg,
	)
	sessions := storage.NewSessionStorage(cfg.Sessions.IdleTTL)
	janitor := service.NewSessionJanitor(sessions, cfg.Sessions.SweepSchedule, lg)

	api := httpapi.NewHandler(catalog, factory, sessions, cfg.Game.PlayerName, lg)
	server := httpapi.NewServer(cfg.HTTP.Addr, httpapi.NewRouter(api, cfg.HTTP.AllowedOrigins, lg), lg)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return server.Run(ctx) })
	g.Go(func() error { return janitor.Start(ctx) })

	if cfg.TelegramAPIToken != "" {
		bot, err := newBot(cfg, lg)
		if err != nil {
			return err
		}

		playerService := service.NewPlayerService(players, lg)
		handler := telegram.NewHandler(bot, lg, catalog, factory, sessions, playerService, cfg.Game.PlayerName)
		g.Go(func() error { return handler.Run(ctx) })
	} else {
		lg.Info("telegram disabled: TELEGRAM_API_TOKEN is not set")
	}

	return g.Wait()
}

func loadCatalog(ctx context.Context, cfg *config.Config, tr *postgres.Transactor, lg *zap.Logger) (*repository.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		if tr == nil {
			return nil, errors.New("postgres catalog requires a database")
		}
		return service.NewCatalogStore(tr, lg).Load(ctx)
	default:
		return repository.LoadCatalog(cfg.Catalog.Path)
	}
}

func newBot(cfg *config.Config, lg *zap.Logger) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = cfg.Env != "production"

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "play", Description: "Choose a game"},
		{Command: "score", Description: "Show your score"},
		{Command: "stop", Description: "End the current game"},
		{Command: "help", Description: "Help"},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("telegram authorized", zap.String("username", bot.Self.UserName))
	return bot, nil
}
