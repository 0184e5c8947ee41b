package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextMaple_Go/internal/catalog/catalogtest"
	"github.com/osse101/TextMaple_Go/internal/combat"
	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/enhancement"
	"github.com/osse101/TextMaple_Go/internal/event/eventtest"
	"github.com/osse101/TextMaple_Go/internal/persistence"
	"github.com/osse101/TextMaple_Go/internal/utils/randtest"
)

// memStore keeps every written document so tests can inspect the history
type memStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	writes   [][]byte
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Read(_ context.Context, slot string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[slot]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", slot, domain.ErrSaveNotFound)
	}
	return data, nil
}

func (m *memStore) Write(_ context.Context, slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[slot] = data
	m.writes = append(m.writes, data)
	return nil
}

func (m *memStore) Slots(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slots := make([]string, 0, len(m.data))
	for slot := range m.data {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}

func (m *memStore) history() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]byte(nil), m.writes...)
}

const testSlot = "test"

func newTestSession(t *testing.T, store *memStore, opts Options) (*Session, *persistence.LoadResult) {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = randtest.NewSequenceRand([]float64{0.99}, []int{0})
	}
	return New(context.Background(), catalogtest.Default(t), persistence.NewService(store, testSlot, opts.Publisher), opts)
}

func inEncounter(t *testing.T, s *Session) bool {
	t.Helper()
	return dispatch(t, s, Request{Command: CommandViewStatus}).Status.InEncounter
}

func dispatch(t *testing.T, s *Session, req Request) *Result {
	t.Helper()
	res, err := s.Dispatch(context.Background(), req)
	require.NoError(t, err, "command %s", req.Command)
	return res
}

func TestNew_FreshGameSeedsStarterKit(t *testing.T) {
	s, loaded := newTestSession(t, newMemStore(), Options{})

	assert.True(t, loaded.Fresh)
	inv := dispatch(t, s, Request{Command: CommandViewInventory}).Inventory
	require.Len(t, inv, 3)
	assert.Equal(t, "Shabby Shirt", inv[0].Name)
	assert.Equal(t, "Shabby Hat", inv[1].Name)
	assert.Equal(t, "Wooden Staff", inv[2].Name)
	for _, it := range inv {
		assert.False(t, it.Equipped)
	}

	status := dispatch(t, s, Request{Command: CommandViewStatus}).Status
	assert.Equal(t, domain.DefaultMeso, status.Meso)
	assert.Equal(t, 1, status.Level)
	assert.Equal(t, domain.JobNovice, status.Job)
}

func TestNew_StartingMeso(t *testing.T) {
	s, _ := newTestSession(t, newMemStore(), Options{StartingMeso: 5000})

	assert.Equal(t, int64(5000), dispatch(t, s, Request{Command: CommandViewStatus}).Status.Meso)
}

func TestNew_LoadsExistingSave(t *testing.T) {
	store := newMemStore()
	c := domain.NewCharacter()
	c.Level = 7
	c.Meso = 1234
	c.Inventory = []*domain.Item{{Name: "Old Wooden Staff", StatType: domain.StatAttack, Slot: domain.SlotWeapon, Power: 35, Equipped: true}}
	state := persistence.Snapshot(c, nil)
	state.ShopPurchases = []bool{false, false, true}
	data, err := persistence.Encode(state)
	require.NoError(t, err)
	store.data[testSlot] = data

	s, loaded := newTestSession(t, store, Options{StartingMeso: 99})

	assert.False(t, loaded.Fresh)
	assert.False(t, loaded.Recovered)
	status := dispatch(t, s, Request{Command: CommandViewStatus}).Status
	assert.Equal(t, 7, status.Level)
	assert.Equal(t, int64(1234), status.Meso, "starting meso only applies to new games")
	assert.Equal(t, 45, status.Effective.Attack)

	inv := dispatch(t, s, Request{Command: CommandViewInventory}).Inventory
	require.Len(t, inv, 1, "no starter kit on a loaded game")

	shop := dispatch(t, s, Request{Command: CommandOpenShop}).Shop
	require.Len(t, shop, 3)
	assert.True(t, shop[2].Purchased)
	assert.False(t, shop[0].Affordable)
}

func TestNew_CorruptSaveStartsOver(t *testing.T) {
	store := newMemStore()
	store.data[testSlot] = []byte("{not json")

	s, loaded := newTestSession(t, store, Options{})

	assert.True(t, loaded.Recovered)
	assert.ErrorIs(t, loaded.Err, domain.ErrMalformedSaveData)
	assert.Len(t, dispatch(t, s, Request{Command: CommandViewInventory}).Inventory, 3)
}

func TestDispatch_EquipToggleUpdatesStatus(t *testing.T) {
	rec := eventtest.NewRecorder()
	s, _ := newTestSession(t, newMemStore(), Options{Publisher: rec})

	res := dispatch(t, s, Request{Command: CommandEquipToggle, Index: 2})
	require.NotNil(t, res.Toggle)
	assert.True(t, res.Toggle.Equipped)
	assert.True(t, res.Inventory[2].Equipped)
	assert.Len(t, rec.OfType(domain.EventTypeItemEquipped), 1)

	status := dispatch(t, s, Request{Command: CommandViewStatus}).Status
	assert.Equal(t, 10, status.Base.Attack)
	assert.Equal(t, 13, status.Effective.Attack)
	assert.Equal(t, domain.Stats{Attack: 3}, status.Bonus)

	_, err := s.Dispatch(context.Background(), Request{Command: CommandEquipToggle, Index: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestDispatch_HuntAndRest(t *testing.T) {
	rec := eventtest.NewRecorder()
	s, _ := newTestSession(t, newMemStore(), Options{Publisher: rec})
	ctx := context.Background()

	zones := dispatch(t, s, Request{Command: CommandViewZones}).Zones
	require.Len(t, zones, 3)
	assert.True(t, zones[2].Boss)

	enc := dispatch(t, s, Request{Command: CommandEnterZone, ZoneID: "spore_hill"}).Encounter
	require.NotNil(t, enc)
	assert.Equal(t, "Spore", enc.MonsterName)
	assert.Equal(t, 50, enc.MonsterHP)
	assert.True(t, inEncounter(t, s))

	for _, cmd := range []Command{CommandRest, CommandPurchase, CommandSell, CommandEquipToggle, CommandEnhance, CommandClassChange, CommandEnterZone} {
		_, err := s.Dispatch(ctx, Request{Command: cmd, ZoneID: "spore_hill"})
		assert.ErrorIs(t, err, domain.ErrEncounterInProgress, "command %s", cmd)
	}
	// views stay available mid-fight
	assert.True(t, dispatch(t, s, Request{Command: CommandViewStatus}).Status.InEncounter)

	// attack 10 vs defense 5 deals 5; the spore has 50 HP
	var last *Result
	for i := 0; i < 10; i++ {
		last = dispatch(t, s, Request{Command: CommandAttack})
	}
	require.NotNil(t, last.Turn)
	assert.Equal(t, combat.StateVictory, last.Turn.State)
	assert.Equal(t, combat.StateVictory, last.Encounter.State)
	assert.Equal(t, 10, last.Encounter.Turns)
	assert.False(t, inEncounter(t, s))

	status := dispatch(t, s, Request{Command: CommandViewStatus}).Status
	assert.Equal(t, 25, status.Exp)
	assert.Equal(t, 55, status.HP, "nine counter-attacks of 5")
	assert.Equal(t, domain.DefaultMeso+500, status.Meso)
	assert.Len(t, rec.OfType(domain.EventTypeMonsterDefeated), 1)

	_, err := s.Dispatch(ctx, Request{Command: CommandAttack})
	assert.ErrorIs(t, err, domain.ErrNoEncounter)

	rest := dispatch(t, s, Request{Command: CommandRest})
	require.NotNil(t, rest.Rest)
	assert.Equal(t, 100, rest.Status.HP)
	assert.Equal(t, domain.DefaultMeso, rest.Status.Meso)
}

func TestDispatch_FleeAndDefend(t *testing.T) {
	s, _ := newTestSession(t, newMemStore(), Options{})

	dispatch(t, s, Request{Command: CommandEnterZone, ZoneID: "humming_trail"})
	defend := dispatch(t, s, Request{Command: CommandDefend})
	assert.Equal(t, combat.StateOngoing, defend.Turn.State)
	assert.Equal(t, 100, defend.Turn.PlayerHP)
	assert.True(t, inEncounter(t, s))

	flee := dispatch(t, s, Request{Command: CommandFlee})
	assert.Equal(t, combat.StateFled, flee.Turn.State)
	assert.False(t, inEncounter(t, s))

	_, err := s.Dispatch(context.Background(), Request{Command: CommandFlee})
	assert.ErrorIs(t, err, domain.ErrNoEncounter)
}

func TestDispatch_UnknownZone(t *testing.T) {
	s, _ := newTestSession(t, newMemStore(), Options{})

	_, err := s.Dispatch(context.Background(), Request{Command: CommandEnterZone, ZoneID: "ellinia"})

	assert.ErrorIs(t, err, domain.ErrUnknownZone)
	assert.False(t, inEncounter(t, s))
}

func TestDispatch_ShopAndSave(t *testing.T) {
	store := newMemStore()
	s, _ := newTestSession(t, store, Options{})
	ctx := context.Background()

	res := dispatch(t, s, Request{Command: CommandPurchase, Index: 0})
	require.NotNil(t, res.Purchase)
	assert.Equal(t, int64(50_000), res.Purchase.Price)
	assert.True(t, res.Shop[0].Purchased)

	_, err := s.Dispatch(ctx, Request{Command: CommandPurchase, Index: 0})
	assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)
	_, err = s.Dispatch(ctx, Request{Command: CommandPurchase, Index: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	sale := dispatch(t, s, Request{Command: CommandSell, Index: 0})
	assert.Equal(t, "Shabby Shirt", sale.Sale.Item.Name)
	assert.Equal(t, int64(1500), sale.Sale.Price)
	require.Len(t, sale.Inventory, 3)
	assert.Equal(t, "Mushmom Spore", sale.Inventory[2].Name)

	saved := dispatch(t, s, Request{Command: CommandSave})
	assert.True(t, saved.Saved)
	assert.Empty(t, saved.Warning)

	state, err := persistence.Decode(store.data[testSlot])
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, state.ShopPurchases)
	assert.Equal(t, domain.DefaultMeso-50_000+1500, state.Character.Meso)
	assert.Len(t, state.Character.Inventory, 3)
}

func TestDispatch_EnhanceQuoteAndEnhance(t *testing.T) {
	// roll 1 is a success; the multiplier draw is 1
	rnd := randtest.NewSequenceRand(nil, []int{0, 0})
	s, _ := newTestSession(t, newMemStore(), Options{Rand: rnd})

	quote := dispatch(t, s, Request{Command: CommandEnhanceQuote, Index: 2}).Quote
	require.NotNil(t, quote)
	assert.Equal(t, int64(300), quote.Cost)
	assert.Equal(t, enhancement.Bands{Success: 80, Failure: 15, Downgrade: 5}, quote.Bands)

	res := dispatch(t, s, Request{Command: CommandEnhance, Index: 2})
	require.NotNil(t, res.Enhancement)
	assert.Equal(t, enhancement.OutcomeSuccess, res.Enhancement.Outcome)
	assert.Equal(t, 1, res.Enhancement.LevelAfter)
	assert.Equal(t, "Wooden Staff (1★)", res.Inventory[2].DisplayName)

	status := dispatch(t, s, Request{Command: CommandViewStatus}).Status
	assert.Equal(t, domain.DefaultMeso-300, status.Meso)
}

func TestDispatch_ClassChangeGating(t *testing.T) {
	s, _ := newTestSession(t, newMemStore(), Options{})

	_, err := s.Dispatch(context.Background(), Request{Command: CommandClassChange})

	assert.ErrorIs(t, err, domain.ErrLevelTooLow)
	assert.True(t, IsGameplayError(err))
}

func TestDispatch_ClassChangeAfterLoad(t *testing.T) {
	store := newMemStore()
	c := domain.NewCharacter()
	c.Level = 10
	data, err := persistence.Encode(persistence.Snapshot(c, nil))
	require.NoError(t, err)
	store.data[testSlot] = data
	s, _ := newTestSession(t, store, Options{})

	assert.True(t, dispatch(t, s, Request{Command: CommandViewStatus}).Status.ClassChangeAvailable)

	status := dispatch(t, s, Request{Command: CommandClassChange}).Status
	assert.Equal(t, domain.JobMage, status.Job)
	assert.True(t, status.ClassChanged)
	assert.False(t, status.ClassChangeAvailable)

	_, err = s.Dispatch(context.Background(), Request{Command: CommandClassChange})
	assert.ErrorIs(t, err, domain.ErrAlreadyClassChanged)
}

func TestDispatch_SaveFailureIsWarning(t *testing.T) {
	store := newMemStore()
	store.writeErr = errors.New("disk full")
	s, _ := newTestSession(t, store, Options{})

	res, err := s.Dispatch(context.Background(), Request{Command: CommandSave})

	require.NoError(t, err)
	assert.False(t, res.Saved)
	assert.Contains(t, res.Warning, domain.ErrMsgPersistenceWriteFailure)
}

func TestDispatch_QuitSavesAndCloses(t *testing.T) {
	store := newMemStore()
	s, _ := newTestSession(t, store, Options{})
	ctx := context.Background()

	dispatch(t, s, Request{Command: CommandEnterZone, ZoneID: "spore_hill"})
	res := dispatch(t, s, Request{Command: CommandQuit})

	assert.True(t, res.Quit)
	assert.True(t, res.Saved)
	assert.True(t, s.Closed())
	assert.Len(t, store.history(), 1)

	_, err := s.Dispatch(ctx, Request{Command: CommandViewStatus})
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	assert.ErrorIs(t, s.Save(ctx), domain.ErrSessionClosed)
}

func TestDispatch_QuitWithFailingStoreStillCloses(t *testing.T) {
	store := newMemStore()
	store.writeErr = errors.New("read-only filesystem")
	s, _ := newTestSession(t, store, Options{})

	res := dispatch(t, s, Request{Command: CommandQuit})

	assert.True(t, res.Quit)
	assert.False(t, res.Saved)
	assert.NotEmpty(t, res.Warning)
	assert.True(t, s.Closed())
}

func TestDispatch_ViewSaves(t *testing.T) {
	store := newMemStore()
	store.data["alt"] = []byte(`{}`)
	s, _ := newTestSession(t, store, Options{})

	saves := dispatch(t, s, Request{Command: CommandViewSaves}).Saves
	require.NotNil(t, saves)
	assert.Equal(t, testSlot, saves.Current)
	assert.Equal(t, []string{"alt"}, saves.Slots)

	dispatch(t, s, Request{Command: CommandSave})
	saves = dispatch(t, s, Request{Command: CommandViewSaves}).Saves
	assert.Equal(t, []string{"alt", testSlot}, saves.Slots)

	// listing is a read, so it stays available mid-fight
	dispatch(t, s, Request{Command: CommandEnterZone, ZoneID: "spore_hill"})
	assert.NotNil(t, dispatch(t, s, Request{Command: CommandViewSaves}).Saves)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	s, _ := newTestSession(t, newMemStore(), Options{})

	_, err := s.Dispatch(context.Background(), Request{Command: Command(99)})

	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Equal(t, "Command(99)", Command(99).String())
}

func TestSnapshotIsIndependent(t *testing.T) {
	s, _ := newTestSession(t, newMemStore(), Options{})

	snap := s.Snapshot()
	snap.Character.Meso = 0
	snap.Character.Inventory[0].Power = 999

	status := dispatch(t, s, Request{Command: CommandViewStatus}).Status
	assert.Equal(t, domain.DefaultMeso, status.Meso)
	assert.Equal(t, 3, dispatch(t, s, Request{Command: CommandViewInventory}).Inventory[0].Power)
}

func TestSave_ConcurrentWithCommands(t *testing.T) {
	store := newMemStore()
	s, _ := newTestSession(t, store, Options{})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, s.Save(ctx))
		}
	}()

	for i := 0; i < 50; i++ {
		dispatch(t, s, Request{Command: CommandEquipToggle, Index: i % 3})
		if i == 10 {
			dispatch(t, s, Request{Command: CommandPurchase, Index: 0})
		}
		if i == 20 {
			// Mushmom Spore competes with Shabby Hat for the hat slot
			dispatch(t, s, Request{Command: CommandEquipToggle, Index: 3})
		}
	}
	wg.Wait()

	history := store.history()
	require.Len(t, history, 50)
	for _, data := range history {
		state, err := persistence.Decode(data)
		require.NoError(t, err)
		slots := map[domain.EquipmentSlot]int{}
		for _, it := range state.Character.Inventory {
			if it.Equipped {
				slots[it.Slot]++
			}
		}
		for slot, n := range slots {
			assert.Equal(t, 1, n, "slot %s", slot)
		}
	}
}
