package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/castromatias32878-collab/WebVastum2025/internal/repository"
)

// Supported store backends.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Backend reports which store implementation serves the given URL.
func Backend(storeURL string) (string, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return "", fmt.Errorf("parse store url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "memory":
		return BackendMemory, nil
	default:
		return "", fmt.Errorf("unsupported store url scheme %q", u.Scheme)
	}
}

// Open connects to the store named by storeURL and bootstraps its indexes.
// dbName selects the MongoDB database and is ignored by other backends.
func Open(ctx context.Context, storeURL, dbName string) (repository.DocumentStore, error) {
	if storeURL == "" {
		return nil, fmt.Errorf("store URL must not be empty")
	}

	backend, err := Backend(storeURL)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendMongo:
		client, err := ConnectMongo(ctx, storeURL)
		if err != nil {
			return nil, err
		}
		store := repository.NewMongoDocumentStore(client, client.Database(dbName))
		if err := store.EnsureIndexes(ctx, repository.CollectionContacts, repository.CollectionLogos); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return store, nil
	case BackendPostgres:
		pool, err := Connect(ctx, storeURL)
		if err != nil {
			return nil, err
		}
		store := repository.NewPGXDocumentStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	default:
		return repository.NewMemoryDocumentStore(), nil
	}
}

// Connect opens a PostgreSQL connection pool using pgx and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN must not be empty")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}

	cfg.MaxConnLifetime = 1 * time.Hour
	cfg.MaxConnIdleTime = 15 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// ConnectMongo opens a MongoDB client and pings the primary.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI must not be empty")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxConnIdleTime(15 * time.Minute)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("parse mongo uri: %w", err)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}
