package alerts

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAppendsInOrder(t *testing.T) {
	store := NewStore()

	first := store.Set(Alert{Message: "saved", Severity: SeveritySuccess})
	second := store.Set(Alert{Message: "broken", Severity: SeverityDanger})

	got := store.Alerts()
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, "saved", got[0].Message)
	assert.Equal(t, "broken", got[1].Message)
}

func TestStore_SetAssignsIDWhenMissing(t *testing.T) {
	store := NewStore()

	a := store.Set(Alert{Message: "no id", Severity: SeverityInfo})
	assert.NotEmpty(t, a.ID)

	b := store.Set(Alert{ID: "fixed", Message: "has id", Severity: SeverityInfo})
	assert.Equal(t, "fixed", b.ID)
}

func TestStore_DuplicateIDsCoexist(t *testing.T) {
	store := NewStore()

	store.Set(Alert{ID: "dup", Message: "one", Severity: SeverityInfo})
	store.Set(Alert{ID: "dup", Message: "two", Severity: SeverityInfo})

	got := store.Alerts()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Message)
	assert.Equal(t, "two", got[1].Message)
}

func TestStore_RemoveFiltersAllMatching(t *testing.T) {
	store := NewStore()

	store.Set(Alert{ID: "dup", Message: "one", Severity: SeverityInfo})
	store.Set(Alert{ID: "keep", Message: "stays", Severity: SeveritySuccess})
	store.Set(Alert{ID: "dup", Message: "two", Severity: SeverityInfo})

	store.Remove("dup")

	got := store.Alerts()
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].ID)
}

func TestStore_RemoveUnknownIDIsNoop(t *testing.T) {
	store := NewStore()
	store.Set(Alert{ID: "a", Message: "one", Severity: SeverityInfo})

	store.Remove("does-not-exist")

	assert.Len(t, store.Alerts(), 1)
}

func TestStore_SubscriberSeesEveryMutation(t *testing.T) {
	store := NewStore()

	var snapshots [][]Alert
	store.Subscribe(func(alerts []Alert) {
		snapshots = append(snapshots, alerts)
	})

	store.Set(Alert{ID: "a", Message: "one", Severity: SeverityInfo})
	store.Set(Alert{ID: "b", Message: "two", Severity: SeverityInfo})
	store.Remove("a")

	require.Len(t, snapshots, 3)
	assert.Len(t, snapshots[0], 1)
	assert.Len(t, snapshots[1], 2)
	require.Len(t, snapshots[2], 1)
	assert.Equal(t, "b", snapshots[2][0].ID)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	store.Set(Alert{ID: "a", Message: "one", Severity: SeverityInfo})

	got := store.Alerts()
	got[0].Message = "mutated"

	assert.Equal(t, "one", store.Alerts()[0].Message)
}

func TestStore_ConcurrentMutations(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := store.Set(Alert{Message: "transient", Severity: SeverityInfo})
			store.Remove(a.ID)
		}()
	}
	wg.Wait()

	assert.Empty(t, store.Alerts())
}
