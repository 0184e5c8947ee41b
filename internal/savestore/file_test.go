package savestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/persistence"
)

func TestFileStore_ReadMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Read(context.Background(), "slot1")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)
}

func TestFileStore_WriteRead(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "saves")
	store := NewFileStore(dir)

	require.NoError(t, store.Write(ctx, "slot1", []byte(`{"a":1}`)))
	require.NoError(t, store.Write(ctx, "slot1", []byte(`{"a":2}`)))

	data, err := store.Read(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	info, err := os.Stat(store.Path("slot1"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(saveFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStore_InvalidSlot(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	for _, slot := range []string{"", "../escape", "a/b", "with space", string(make([]byte, 65))} {
		_, err := store.Read(ctx, slot)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "read %q", slot)
		assert.ErrorIs(t, store.Write(ctx, slot, []byte("{}")), domain.ErrInvalidInput, "write %q", slot)
	}
}

func TestFileStore_Slots(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir)

	slots, err := store.Slots(ctx)
	require.NoError(t, err)
	assert.Empty(t, slots)

	require.NoError(t, store.Write(ctx, "beta", []byte("{}")))
	require.NoError(t, store.Write(ctx, "alpha", []byte("{}")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	slots, err = store.Slots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, slots)

	missing := NewFileStore(filepath.Join(dir, "does-not-exist"))
	slots, err = missing.Slots(ctx)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFileStore_ConcurrentWritesStayDecodable(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := domain.NewCharacter()
			c.Name = fmt.Sprintf("writer-%d", i)
			data, err := persistence.Encode(persistence.Snapshot(c, nil))
			if assert.NoError(t, err) {
				assert.NoError(t, store.Write(ctx, "shared", data))
			}
		}(i)
	}
	wg.Wait()

	data, err := store.Read(ctx, "shared")
	require.NoError(t, err)
	_, err = persistence.Decode(data)
	assert.NoError(t, err)
}

func TestFileStore_WithPersistenceService(t *testing.T) {
	ctx := context.Background()
	svc := persistence.NewService(NewFileStore(t.TempDir()), "main", nil)

	first := svc.Load(ctx)
	require.True(t, first.Fresh)

	c := first.State.Character
	c.Level = 4
	c.Inventory = append(c.Inventory, &domain.Item{Name: "Wooden Staff", Power: 3, Equipped: true, Slot: domain.SlotWeapon})
	require.NoError(t, svc.Save(ctx, persistence.Snapshot(c, nil)))

	second := svc.Load(ctx)
	assert.False(t, second.Fresh)
	assert.Equal(t, c, second.State.Character)
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewFileStore(t.TempDir())

	assert.ErrorIs(t, store.Write(ctx, "slot1", []byte("{}")), context.Canceled)
	_, err := store.Read(ctx, "slot1")
	assert.ErrorIs(t, err, context.Canceled)
}
