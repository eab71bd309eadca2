package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/tokoretail/retail-platform/internal/config"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsTable = "toko_schema_migrations"

// Repository bundles the connection pool with every table repository built
// on top of it.
type Repository struct {
	DB *sql.DB

	Tx           TxManager
	Products     ProductRepository
	Carts        CartRepository
	Orders       OrderRepository
	Customers    CustomerRepository
	Distributors DistributorRepository
	Couriers     CourierRepository
	Users        UserRepository
	Sales        SaleRepository
	Stats        StatsRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.RunMigrations {
		if err := RunMigrations(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return NewWithDB(db), nil
}

// NewWithDB wires the repositories around an already opened pool.
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{
		DB:           db,
		Tx:           NewTxManager(db),
		Products:     NewProductRepo(db),
		Carts:        NewCartRepo(db),
		Orders:       NewOrderRepo(db),
		Customers:    NewCustomerRepo(db),
		Distributors: NewDistributorRepo(db),
		Couriers:     NewCourierRepo(db),
		Users:        NewUserRepo(db),
		Sales:        NewSaleRepo(db),
		Stats:        NewStatsRepo(db),
	}
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(db *sql.DB) error {

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
