package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/bookkeeper/internal/client/api"
	"github.com/iudanet/bookkeeper/internal/client/buffer"
	"github.com/iudanet/bookkeeper/internal/client/cli"
	"github.com/iudanet/bookkeeper/internal/client/iocli"
	"github.com/iudanet/bookkeeper/internal/client/ledger"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/bookkeeper/internal/client/storage/sqlite"
	syncsvc "github.com/iudanet/bookkeeper/internal/client/sync"
	"github.com/iudanet/bookkeeper/internal/crdt"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Relay server URL")
	dbPath := flag.String("db", "bookkeeper-client.db", "Path to local state database")
	ledgerPath := flag.String("ledger", "bookkeeper-ledger.db", "Path to local ledger database")
	password := flag.String("password", "", "Encryption password (not recommended)")
	passwordFile := flag.String("password-file", "", "Path to file containing encryption password")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage (сессия, часы, метаданные)
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Открываем локальную реплику гроссбуха
	ledgerStore, err := sqlite.New(ctx, *ledgerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := ledgerStore.Close(); err != nil {
			slog.Error("failed to close ledger database", "error", err)
		}
	}()

	// Восстанавливаем часы реплики или заводим новые при первом запуске
	clock, err := restoreClock(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore clock: %v\n", err)
		os.Exit(1)
	}

	// Создаем API клиент
	apiClient := api.NewClient(*serverURL)

	// Несинхронизированные правки переживают перезапуск процесса
	buf, err := buffer.NewPersistent(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore change buffer: %v\n", err)
		os.Exit(1)
	}
	applier := syncsvc.NewApplier(ledgerStore, boltStorage, logger)
	syncService := syncsvc.NewService(apiClient, boltStorage, boltStorage, buf, applier, clock, logger)
	ledgerService := ledger.NewService(ledgerStore, boltStorage, buf, logger)

	c := cli.New(
		iocli.NewStdio(),
		apiClient,
		boltStorage,
		boltStorage,
		ledgerStore,
		ledgerService,
		syncService,
		logger,
		cli.Passwords{
			FromFile: *passwordFile,
			FromArgs: *password,
		},
	)

	// Выполняем команду
	c.Run(ctx, command, args[1:])
}

// restoreClock загружает сохраненное состояние часов,
// при первом запуске генерирует новый идентификатор реплики
func restoreClock(ctx context.Context, clocks storage.ClockStorage) (*crdt.Clock, error) {
	state, err := clocks.GetClock(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrClockNotFound) {
			// Идентификатор реплики сохраняем сразу, иначе каждый
			// запуск до первой синхронизации заводил бы новый
			id := crdt.NewClientID()
			if err := clocks.SaveClock(ctx, &storage.ClockState{ClientID: id}); err != nil {
				return nil, fmt.Errorf("failed to persist replica identity: %w", err)
			}
			return crdt.NewClock(id), nil
		}
		return nil, err
	}

	clock := crdt.NewClock(state.ClientID)
	if state.Last != "" {
		last, err := crdt.ParseTimestamp(state.Last)
		if err != nil {
			return nil, fmt.Errorf("bad persisted timestamp: %w", err)
		}
		clock.SetLast(last)
	}
	return clock, nil
}

func printVersion() {
	fmt.Printf("Bookkeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
