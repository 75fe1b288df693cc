// File path: internal/records/store_test.go
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immensecng/cylinder-retest/internal/catalog"
)

func validCandidate() Candidate {
	return Candidate{Type: "Nitrogen", Technician: "A. Verma", Date: "2024-01-01"}
}

func TestAddToEmptyStore(t *testing.T) {
	store := NewStore()
	rec, err := store.Add(validCandidate())
	require.NoError(t, err)

	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, rec, list[0])
	assert.Equal(t, catalog.Nitrogen, rec.Type)
	assert.Equal(t, catalog.StatusIdentified, rec.Status)
	assert.Equal(t, catalog.DegassingNotStarted, rec.DegassingStatus)
	assert.Equal(t, "2024-01-01", rec.DateString())
	assert.Equal(t, "A. Verma", rec.Technician)
	assert.NotEmpty(t, rec.ID)
}

func TestAddRejectsEmptyTechnician(t *testing.T) {
	store := NewStore(WithRecords(SeedRecords()...))
	before := store.List()

	c := validCandidate()
	c.Technician = "   "
	_, err := store.Add(c)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.True(t, verr.Has("technician"))
	assert.Equal(t, before, store.List())
}

func TestAddReportsEveryFailingField(t *testing.T) {
	store := NewStore()
	_, err := store.Add(Candidate{Type: "Helium", Date: "01/02/2024"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("type"))
	assert.True(t, verr.Has("date"))
	assert.True(t, verr.Has("technician"))
	assert.Contains(t, verr.Error(), "technician")
	assert.Zero(t, store.Len())
}

func TestAddMissingTypeAndDate(t *testing.T) {
	store := NewStore()
	_, err := store.Add(Candidate{Technician: "Ravi"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestAddAssignsFreshUniqueIDs(t *testing.T) {
	store := NewStore()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		before := store.Len()
		rec, err := store.Add(validCandidate())
		require.NoError(t, err)
		assert.Equal(t, before+1, store.Len())
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestAddSkipsCollidingIDs(t *testing.T) {
	ids := []string{"CYL-2023-001", "CYL-2023-001", "CYL-NEW"}
	next := 0
	gen := func() string {
		id := ids[next]
		next++
		return id
	}
	store := NewStore(WithRecords(SeedRecords()...), WithIDGenerator(gen))
	rec, err := store.Add(validCandidate())
	require.NoError(t, err)
	assert.Equal(t, "CYL-NEW", rec.ID)
}

func addWithin(t *testing.T, store *Store, wait time.Duration) Record {
	t.Helper()
	type result struct {
		rec Record
		err error
	}
	done := make(chan result, 1)
	go func() {
		rec, err := store.Add(validCandidate())
		done <- result{rec, err}
	}()
	select {
	case res := <-done:
		require.NoError(t, res.err)
		return res.rec
	case <-time.After(wait):
		t.Fatalf("Add did not return within %v", wait)
		return Record{}
	}
}

func TestAddFallsBackWhenGeneratorRepeats(t *testing.T) {
	store := NewStore(WithIDGenerator(func() string { return "CYL-FIXED" }))
	first := addWithin(t, store, 2*time.Second)
	second := addWithin(t, store, 2*time.Second)
	assert.Equal(t, "CYL-FIXED", first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(second.ID, "CYL-"))
	assert.Equal(t, 2, store.Len())
}

func TestAddFallsBackWhenGeneratorReturnsEmpty(t *testing.T) {
	store := NewStore(WithIDGenerator(func() string { return " " }))
	rec := addWithin(t, store, 2*time.Second)
	assert.True(t, strings.HasPrefix(rec.ID, "CYL-"))
}

func TestWithRecordsSkipsDuplicateAndEmptyIDs(t *testing.T) {
	seed := SeedRecords()
	extra := seed[0]
	extra.Technician = "duplicate"
	store := NewStore(WithRecords(append(seed, extra, Record{Type: catalog.Argon, Technician: "no id"})...))
	require.Equal(t, len(seed), store.Len())
	assert.NotEqual(t, "duplicate", store.List()[0].Technician)
}

func TestSummaryIsConsistentUnderConcurrentAdds(t *testing.T) {
	store := NewStore(WithRecords(SeedRecords()...))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_, _ = store.Add(validCandidate())
		}
	}()
	for i := 0; i < 200; i++ {
		sum := store.Summary()
		require.LessOrEqual(t, sum.Completed, sum.Total)
		require.Equal(t, percent(sum.Completed, sum.Total), sum.PercentComplete)
	}
	wg.Wait()
	assert.Equal(t, 203, store.Len())
}

func TestListPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	for _, name := range []string{"first", "second", "third"} {
		c := validCandidate()
		c.Technician = name
		_, err := store.Add(c)
		require.NoError(t, err)
	}
	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Technician)
	assert.Equal(t, "third", list[2].Technician)

	list[0].Technician = "mutated"
	assert.Equal(t, "first", store.List()[0].Technician)
}

func TestPercentComplete(t *testing.T) {
	assert.Equal(t, 0, NewStore().PercentComplete())

	store := NewStore(WithRecords(
		Record{ID: "a", Type: catalog.Argon, Status: catalog.StatusDegassed, DegassingStatus: catalog.DegassingCompleted, Technician: "x"},
		Record{ID: "b", Type: catalog.Argon, Status: catalog.StatusIdentified, DegassingStatus: catalog.DegassingNotStarted, Technician: "y"},
	))
	assert.Equal(t, 50, store.PercentComplete())

	_, err := store.Add(validCandidate())
	require.NoError(t, err)
	assert.Equal(t, 33, store.PercentComplete())
}

func TestSummaryOfSeedRecords(t *testing.T) {
	store := NewStore(WithRecords(SeedRecords()...))
	assert.Equal(t, Summary{Total: 3, Completed: 1, Pending: 1, PercentComplete: 33}, store.Summary())

	_, err := store.Add(validCandidate())
	require.NoError(t, err)
	assert.Equal(t, 4, store.Summary().Total)
	assert.Equal(t, 25, store.Summary().PercentComplete)
}

func TestFilterByField(t *testing.T) {
	store := NewStore(WithRecords(SeedRecords()...))

	got, err := store.FilterByField("type", "acetylene")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CYL-2023-002", got[0].ID)

	got, err = store.FilterByField("degassingStatus", "In Progress")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mike Johnson", got[0].Technician)

	got, err = store.FilterByField("technician", "jane smith")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = store.FilterByField("colour", "red")
	assert.Error(t, err)
	_, err = store.FilterByField("status", "Lost")
	assert.Error(t, err)
}

func TestCountByPredicateIsRecomputed(t *testing.T) {
	store := NewStore()
	assert.Zero(t, store.CountByPredicate(TypeIs(catalog.Nitrogen)))
	_, err := store.Add(validCandidate())
	require.NoError(t, err)
	assert.Equal(t, 1, store.CountByPredicate(TypeIs(catalog.Nitrogen)))
	assert.Equal(t, 1, store.CountByPredicate(nil))
}

func TestPageClampsAndSlices(t *testing.T) {
	store := NewStore()
	for i := 0; i < 7; i++ {
		c := validCandidate()
		c.Technician = fmt.Sprintf("tech-%d", i)
		_, err := store.Add(c)
		require.NoError(t, err)
	}
	first := store.Page(1, 0)
	assert.Equal(t, DefaultPageSize, first.PageSize)
	assert.Equal(t, 2, first.TotalPages)
	assert.Len(t, first.Records, 5)

	last := store.Page(9, 5)
	assert.Equal(t, 2, last.Page)
	require.Len(t, last.Records, 2)
	assert.Equal(t, "tech-6", last.Records[1].Technician)

	empty := NewStore().Page(0, 5)
	assert.Equal(t, 1, empty.Page)
	assert.Empty(t, empty.Records)
}

func TestRecordJSONUsesCalendarDate(t *testing.T) {
	rec := SeedRecords()[0]
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2023-05-15", decoded["date"])
	assert.Equal(t, "CYL-2023-001", decoded["cylinder_id"])
	assert.Equal(t, "Not Required", decoded["degassing_status"])
}
