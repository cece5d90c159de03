package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres"
	customerpg "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/customer"
	ledgerpg "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/ledger"
	rolluppg "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/rollup"
	typetablepg "github.com/SohamSachinDhore/bet-v2/internal/adapter/postgres/typetable"
	"github.com/SohamSachinDhore/bet-v2/internal/calc"
	"github.com/SohamSachinDhore/bet-v2/internal/config"
	"github.com/SohamSachinDhore/bet-v2/internal/parser"
	customersvc "github.com/SohamSachinDhore/bet-v2/internal/service/customer"
	intakesvc "github.com/SohamSachinDhore/bet-v2/internal/service/intake"
	ledgersvc "github.com/SohamSachinDhore/bet-v2/internal/service/ledger"
)

// App holds the wired object graph shared by the commands.
type App struct {
	Cfg  *config.Config
	Log  *slog.Logger
	Pool *pgxpool.Pool

	TypeTables *typetablepg.Repo

	Intake    *intakesvc.Service
	Ledger    *ledgersvc.Service
	Customers *customersvc.Service
}

// Setup loads configuration, connects to the database and builds every
// service. The type tables are loaded once at startup; a failure there
// degrades type-table expansion instead of refusing to start.
func Setup(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := NewLogger(cfg.Log)
	log.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	customers := customerpg.New(pool)
	records := ledgerpg.New(pool)
	rollups := rolluppg.New(pool)
	typeTables := typetablepg.New(pool)

	tables, err := typeTables.Load(ctx)
	if err != nil {
		log.Warn("type tables unavailable, type entries will be rejected",
			slog.String("error", err.Error()))
		tables = nil
	} else if !tables.Loaded() {
		log.Warn("type tables empty, run the typetables seed command")
	}

	engine := calc.New(tables)
	validator := parser.NewJodiValidator(cfg.Parser.MaxJodiNumbers, cfg.Parser.MaxEntryValue)

	return &App{
		Cfg:        cfg,
		Log:        log,
		Pool:       pool,
		TypeTables: typeTables,
		Intake: intakesvc.NewService(log, customers, records, rollups, txm,
			engine, validator, cfg.Ingest.AutoCreateCustomers),
		Ledger:    ledgersvc.NewService(log, records, customers, rollups, txm),
		Customers: customersvc.NewService(log, customers, records, txm),
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
