package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupFavoritePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		property_listing_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestFavoriteWriteRepository_SaveAndDelete(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	writeRepo := NewFavoriteWriteRepository(db)
	readRepo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, models.FavoriteDB{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		PropertyListingID: uuid.New(),
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.False(t, saved.CreatedAt.IsZero())

	t.Run("DuplicatesAllowed", func(t *testing.T) {
		dup, err := writeRepo.Save(ctx, models.FavoriteDB{
			ID:                uuid.New(),
			UserID:            saved.UserID,
			PropertyListingID: saved.PropertyListingID,
		})
		assert.NoError(t, err)
		assert.NotEqual(t, saved.ID, dup.ID)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, saved.ID))

		favorite, err := readRepo.GetByID(ctx, saved.ID)
		assert.NoError(t, err)
		assert.Nil(t, favorite)
	})
}

func TestFavoriteReadRepository_ListByUserID(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	writeRepo := NewFavoriteWriteRepository(db)
	readRepo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	_, err := writeRepo.Save(ctx, models.FavoriteDB{ID: uuid.New(), UserID: userID, PropertyListingID: uuid.New()})
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.FavoriteDB{ID: uuid.New(), UserID: userID, PropertyListingID: uuid.New()})
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.FavoriteDB{ID: uuid.New(), UserID: uuid.New(), PropertyListingID: uuid.New()})
	assert.NoError(t, err)

	favorites, err := readRepo.ListByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, favorites, 2)
	for _, f := range favorites {
		assert.Equal(t, userID, f.UserID)
	}

	t.Run("EmptyForUnknownUser", func(t *testing.T) {
		favorites, err := readRepo.ListByUserID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, favorites)
	})
}

func TestFavoriteReadRepository_GetByID(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	writeRepo := NewFavoriteWriteRepository(db)
	readRepo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, models.FavoriteDB{ID: uuid.New(), UserID: uuid.New(), PropertyListingID: uuid.New()})
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		favorite, err := readRepo.GetByID(ctx, saved.ID)
		assert.NoError(t, err)
		assert.NotNil(t, favorite)
		assert.Equal(t, saved.UserID, favorite.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		favorite, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, favorite)
	})
}
