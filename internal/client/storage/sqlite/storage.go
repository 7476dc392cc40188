package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/bookkeeper/internal/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// schema описывает наборы данных локальной реплики: имя таблицы
// и отображение имен полей из протокола в локальные колонки.
// Изменение, ссылающееся на неизвестный набор или поле, отклоняется
// до применения.
var schema = map[string]datasetSpec{
	models.DatasetAccounts: {
		table: "accounts",
		columns: map[string]string{
			"name":      "name",
			"offbudget": "offbudget",
			"closed":    "closed",
			"tombstone": "tombstone",
		},
	},
	models.DatasetPayees: {
		table: "payees",
		columns: map[string]string{
			"name":      "name",
			"tombstone": "tombstone",
		},
	},
	models.DatasetTransactions: {
		table: "transactions",
		columns: map[string]string{
			"acct":                  "acct",
			"amount":                "amount",
			"date":                  "date",
			"payee":                 "payee",
			"imported_id":           "imported_id",
			"notes":                 "notes",
			"cleared":               "cleared",
			"starting_balance_flag": "starting_balance_flag",
			"tombstone":             "tombstone",
		},
	},
}

type datasetSpec struct {
	table   string
	columns map[string]string
}

// Storage represents SQLite ledger storage implementation
type Storage struct {
	db *sql.DB
}

// New creates a new SQLite storage instance
// dbPath is the path to the SQLite database file
// Use ":memory:" for in-memory database (useful for testing)
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем соединение с БД
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Настраиваем connection pool
	// SQLite с WAL mode может поддерживать несколько читателей, но только одного писателя
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Включаем WAL mode и другие оптимизации
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	storage := &Storage{db: db}

	// Запускаем миграции
	if err := storage.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Сверяем карту наборов данных с фактической схемой таблиц
	if err := storage.verifySchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema verification failed: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// runMigrations выполняет миграции из embedded FS
func (s *Storage) runMigrations() error {
	// Устанавливаем dialect для SQLite
	goose.SetDialect("sqlite3")

	// Устанавливаем источник миграций из embedded FS
	goose.SetBaseFS(embedMigrations)

	// Запускаем миграции
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// verifySchema проверяет, что каждая колонка из карты наборов данных
// существует в соответствующей таблице. Расхождение означает, что
// миграции и карта разошлись - работать с такой БД нельзя.
func (s *Storage) verifySchema(ctx context.Context) error {
	for dataset, spec := range schema {
		existing, err := s.tableColumns(ctx, spec.table)
		if err != nil {
			return err
		}

		for _, local := range spec.columns {
			if !existing[local] {
				return fmt.Errorf("dataset %q: column %q missing in table %q", dataset, local, spec.table)
			}
		}
	}
	return nil
}

// tableColumns возвращает множество колонок таблицы
func (s *Storage) tableColumns(ctx context.Context, table string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to read table info for %q: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan table info: %w", err)
		}
		columns[name] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate table info: %w", err)
	}

	return columns, nil
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}
