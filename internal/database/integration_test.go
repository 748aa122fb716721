//go:build integration

package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/castromatias32878-collab/WebVastum2025/internal/entity"
	"github.com/castromatias32878-collab/WebVastum2025/internal/repository"
)

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port nat.Port) (string, string) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)
	return host, mapped.Port()
}

func TestOpen_MongoIntegration(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections"),
	}, "27017/tcp")

	exerciseStore(t, fmt.Sprintf("mongodb://%s:%s", host, port))
}

func TestOpen_PostgresIntegration(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16",
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		Env: map[string]string{
			"POSTGRES_DB":       "vastum_db",
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
		},
	}, "5432/tcp")

	exerciseStore(t, fmt.Sprintf("postgres://test:test@%s:%s/vastum_db?sslmode=disable", host, port))
}

func exerciseStore(t *testing.T, storeURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := Open(ctx, storeURL, "vastum_db")
	require.NoError(t, err)
	defer store.Close(context.Background())

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"logo-a", "logo-b", "logo-c"} {
		_, err := store.Insert(ctx, repository.CollectionLogos, entity.Logo{
			ID:           id,
			Nombre:       "Partner " + id,
			ImagenBase64: "data:image/png;base64,AAAA",
			CreatedAt:    entity.NewTimestamp(base.Add(time.Duration(i) * time.Minute)),
		})
		require.NoError(t, err)
	}

	var logos []entity.Logo
	err = store.FindProjected(ctx, repository.CollectionLogos, repository.Filter{},
		[]string{"id", "nombre", "imagen_base64", "created_at"},
		repository.Sort{Field: "created_at", Direction: repository.Ascending}, 1000, &logos)
	require.NoError(t, err)
	require.Len(t, logos, 3)
	assert.Equal(t, "logo-a", logos[0].ID)
	assert.Equal(t, "data:image/png;base64,AAAA", logos[0].ImagenBase64)
	assert.NotEmpty(t, logos[0].StorageKey)

	var newestFirst []entity.Logo
	err = store.FindSorted(ctx, repository.CollectionLogos,
		repository.Sort{Field: "created_at", Direction: repository.Descending}, 2, &newestFirst)
	require.NoError(t, err)
	require.Len(t, newestFirst, 2)
	assert.Equal(t, "logo-c", newestFirst[0].ID)

	n, err := store.DeleteByKey(ctx, repository.CollectionLogos, "id", "logo-b")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = store.DeleteByKey(ctx, repository.CollectionLogos, "id", "logo-b")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	require.NoError(t, store.Ping(ctx))
}
