package savestore

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/TextMaple_Go/internal/database"
	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/persistence"
	"github.com/osse101/TextMaple_Go/migrations"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (connStr string, terminate func()) {
	// Docker may be unavailable; testcontainers can panic in that case
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
			connStr, terminate = "", nil
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("textmaple"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", nil
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", nil
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func newPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, testDBConnString, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool, migrations.FS))
	return NewPostgresStore(pool, 0, 0)
}

func TestPostgresStore_ReadMissing(t *testing.T) {
	store := newPostgresStore(t)

	_, err := store.Read(context.Background(), "never-written")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)
}

func TestPostgresStore_WriteRead(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)

	require.NoError(t, store.Write(ctx, "pg-slot", []byte(`{"classChanged": false}`)))
	require.NoError(t, store.Write(ctx, "pg-slot", []byte(`{"classChanged": true}`)))

	data, err := store.Read(ctx, "pg-slot")
	require.NoError(t, err)
	assert.JSONEq(t, `{"classChanged": true}`, string(data))

	store.cache.Purge()
	data, err = store.Read(ctx, "pg-slot")
	require.NoError(t, err)
	assert.JSONEq(t, `{"classChanged": true}`, string(data), "row read after cache purge")

	slots, err := store.Slots(ctx)
	require.NoError(t, err)
	assert.Contains(t, slots, "pg-slot")
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	store := newPostgresStore(t)
	assert.NoError(t, database.Migrate(context.Background(), store.pool, migrations.FS))
}

func TestPostgresStore_RoundTripThroughService(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)
	svc := persistence.NewService(store, "pg-roundtrip", nil)

	c := domain.NewCharacter()
	c.Name = "Stored"
	c.Meso = 42
	c.Inventory = []*domain.Item{
		{Name: "Mushmom Spore", StatType: domain.StatVitality, Slot: domain.SlotHat, Power: 61, Equipped: true, EnhancementLevel: 2},
		{Name: "Wooden Staff", StatType: domain.StatAttack, Slot: domain.SlotWeapon, Power: 3},
	}
	state := persistence.Snapshot(c, nil)
	state.ShopPurchases = []bool{false, true}
	require.NoError(t, svc.Save(ctx, state))

	store.cache.Purge()
	res := svc.Load(ctx)
	require.False(t, res.Recovered)
	assert.Equal(t, c, res.State.Character)
	assert.Equal(t, []bool{false, true}, res.State.ShopPurchases)
}
