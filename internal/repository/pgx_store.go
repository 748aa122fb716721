package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var _ pgxPool = (*pgxpool.Pool)(nil)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS documents (
            storage_key BIGSERIAL PRIMARY KEY,
            collection  TEXT NOT NULL,
            body        JSONB NOT NULL,
            inserted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS documents_collection_id_idx ON documents (collection, (body->>'id'))`,
}

const insertDocumentSQL = `
        INSERT INTO documents (collection, body)
        VALUES ($1, $2::jsonb)
        RETURNING storage_key
    `

const findDocumentsSQL = `
        SELECT storage_key, body
        FROM documents
        WHERE collection = $1
        ORDER BY body->>($2::text) COLLATE "C" %s, storage_key ASC
        LIMIT $3
    `

const findProjectedSQL = `
        SELECT storage_key,
            COALESCE(
                (SELECT jsonb_object_agg(e.key, e.value) FROM jsonb_each(body) AS e WHERE e.key = ANY($3::text[])),
                '{}'::jsonb
            ) AS projected
        FROM documents
        WHERE collection = $1 AND body @> $2::jsonb
        ORDER BY body->>($4::text) COLLATE "C" %s, storage_key ASC
        LIMIT $5
    `

const deleteDocumentSQL = `
        DELETE FROM documents
        WHERE storage_key = (
            SELECT storage_key FROM documents
            WHERE collection = $1 AND body->>($2::text) = $3
            ORDER BY storage_key
            LIMIT 1
        )
    `

// PGXDocumentStore implements DocumentStore on a PostgreSQL JSONB table.
type PGXDocumentStore struct {
	pool pgxPool
}

// NewPGXDocumentStore wires a pgx backed document store.
func NewPGXDocumentStore(pool *pgxpool.Pool) *PGXDocumentStore {
	return &PGXDocumentStore{pool: pool}
}

var _ DocumentStore = (*PGXDocumentStore)(nil)

// EnsureSchema creates the documents table and its indexes when missing.
func (s *PGXDocumentStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return unavailable("ensure schema", "documents", err)
		}
	}
	return nil
}

// Insert stores doc as JSONB. The storage key is the row's serial number.
func (s *PGXDocumentStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal %s document: %w", collection, err)
	}

	var key int64
	if err := s.pool.QueryRow(ctx, insertDocumentSQL, collection, string(body)).Scan(&key); err != nil {
		return "", unavailable("insert", collection, err)
	}
	return strconv.FormatInt(key, 10), nil
}

// FindSorted returns documents ordered by the JSON value of sort.Field.
func (s *PGXDocumentStore) FindSorted(ctx context.Context, collection string, sort Sort, limit int64, out any) error {
	query := fmt.Sprintf(findDocumentsSQL, direction(sort.Direction))
	rows, err := s.pool.Query(ctx, query, collection, sort.Field, limitOrNil(limit))
	if err != nil {
		return unavailable("find", collection, err)
	}
	defer rows.Close()

	return decodeDocuments(rows, collection, out)
}

// FindProjected returns the requested fields of documents containing filter.
func (s *PGXDocumentStore) FindProjected(ctx context.Context, collection string, filter Filter, fields []string, sort Sort, limit int64, out any) error {
	if filter == nil {
		filter = Filter{}
	}
	containment, err := json.Marshal(filter)
	if err != nil {
		return fmt.Errorf("marshal %s filter: %w", collection, err)
	}
	if fields == nil {
		fields = []string{}
	}

	query := fmt.Sprintf(findProjectedSQL, direction(sort.Direction))
	rows, err := s.pool.Query(ctx, query, collection, string(containment), fields, sort.Field, limitOrNil(limit))
	if err != nil {
		return unavailable("find", collection, err)
	}
	defer rows.Close()

	return decodeDocuments(rows, collection, out)
}

// DeleteByKey removes the oldest document whose key field equals value.
func (s *PGXDocumentStore) DeleteByKey(ctx context.Context, collection, key string, value any) (int64, error) {
	cmd, err := s.pool.Exec(ctx, deleteDocumentSQL, collection, key, fmt.Sprint(value))
	if err != nil {
		return 0, unavailable("delete", collection, err)
	}
	return cmd.RowsAffected(), nil
}

// Ping verifies the pool can reach the database.
func (s *PGXDocumentStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return unavailable("ping", "documents", err)
	}
	return nil
}

// Close releases every pooled connection.
func (s *PGXDocumentStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// decodeDocuments injects each row's storage key as "_id" and decodes the
// batch into out through encoding/json.
func decodeDocuments(rows pgx.Rows, collection string, out any) error {
	docs := make([]map[string]json.RawMessage, 0)
	for rows.Next() {
		var (
			key  int64
			body []byte
		)
		if err := rows.Scan(&key, &body); err != nil {
			return unavailable("scan", collection, err)
		}
		doc := map[string]json.RawMessage{}
		if err := json.Unmarshal(body, &doc); err != nil {
			return unavailable("decode", collection, err)
		}
		doc["_id"] = json.RawMessage(strconv.Quote(strconv.FormatInt(key, 10)))
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return unavailable("iterate", collection, err)
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encode %s batch: %w", collection, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s batch: %w", collection, err)
	}
	return nil
}

func direction(d Direction) string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

func limitOrNil(limit int64) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
