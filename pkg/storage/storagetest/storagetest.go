// Package storagetest holds the behaviour every storage.Interface
// implementation must share.
package storagetest

import (
	"testing"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) storage.Interface

// Record builds a record starting at start and lasting d.
func Record(name, shelf string, start time.Time, d time.Duration) *model.Record {
	return &model.Record{
		Name:           name,
		Shelf:          shelf,
		StartTime:      start,
		EndTime:        start.Add(d),
		ElapsedSeconds: int64(d / time.Second),
	}
}

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Run exercises the RecordStore contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateAssignsIncreasingIDs", func(t *testing.T) {
		s := newStore(t)
		var last int64
		for i := 0; i < 5; i++ {
			m := Record("Alice", "A1", utc(2024, 1, 10, 8+i, 0), time.Minute)
			require.NoError(t, s.Records().Create(m))
			assert.Greater(t, m.ID, last)
			last = m.ID
		}
	})

	t.Run("FetchAllNewestFirst", func(t *testing.T) {
		s := newStore(t)
		for i := 0; i < 3; i++ {
			require.NoError(t, s.Records().Create(Record("Alice", "A1", utc(2024, 1, 10, 8, 0), time.Minute)))
		}

		got, err := s.Records().FetchAll()
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Greater(t, got[0].ID, got[1].ID)
		assert.Greater(t, got[1].ID, got[2].ID)

		again, err := s.Records().FetchAll()
		require.NoError(t, err)
		assert.Equal(t, got, again)
	})

	t.Run("FetchAllEmpty", func(t *testing.T) {
		got, err := newStore(t).Records().FetchAll()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s := newStore(t)
		start := time.Date(2024, 1, 10, 17, 0, 0, 250*int(time.Millisecond), time.FixedZone("CST", -6*3600))
		in := Record("Álvaro, \"el jefe\"", "Estante 3", start, 90*time.Second)
		in.ElapsedSeconds = 0
		require.NoError(t, s.Records().Create(in))

		got, err := s.Records().FetchAll()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, in.ID, got[0].ID)
		assert.Equal(t, "Álvaro, \"el jefe\"", got[0].Name)
		assert.Equal(t, "Estante 3", got[0].Shelf)
		assert.Equal(t, int64(0), got[0].ElapsedSeconds)
		assert.True(t, start.Equal(got[0].StartTime))
		assert.True(t, start.Add(90*time.Second).Equal(got[0].EndTime))
		assert.Equal(t, time.UTC, got[0].StartTime.Location())
	})

	t.Run("FetchFiltered", func(t *testing.T) {
		s := newStore(t)
		late := Record("Alice", "A1", utc(2024, 1, 10, 23, 0), 30*time.Minute)
		nextDay := Record("Bob", "B2", utc(2024, 1, 11, 10, 0), time.Hour)
		dayBefore := Record("Alice", "A1", utc(2024, 1, 9, 12, 0), time.Hour)
		endsAtBound := Record("Alice", "A2", utc(2024, 1, 10, 0, 0), 24*time.Hour)
		lower := Record("alice", "A1", utc(2024, 1, 10, 9, 0), time.Hour)
		for _, m := range []*model.Record{late, nextDay, dayBefore, endsAtBound, lower} {
			require.NoError(t, s.Records().Create(m))
		}

		ids := func(f storage.Filter) []int64 {
			got, err := s.Records().FetchFiltered(f)
			require.NoError(t, err)
			out := make([]int64, 0, len(got))
			for _, m := range got {
				out = append(out, m.ID)
			}
			return out
		}

		assert.Equal(t,
			[]int64{late.ID, nextDay.ID, dayBefore.ID, endsAtBound.ID, lower.ID},
			ids(storage.Filter{}), "no filter returns everything oldest first")

		assert.Equal(t,
			[]int64{late.ID, dayBefore.ID, endsAtBound.ID},
			ids(storage.Filter{Name: "Alice"}), "name match is exact and case-sensitive")

		day := utc(2024, 1, 10, 0, 0)
		assert.Equal(t,
			[]int64{late.ID, lower.ID},
			ids(storage.Filter{From: day, To: day.AddDate(0, 0, 1)}))

		assert.Equal(t,
			[]int64{late.ID, nextDay.ID, endsAtBound.ID, lower.ID},
			ids(storage.Filter{From: day}), "lower bound is inclusive")

		assert.Equal(t,
			[]int64{late.ID, dayBefore.ID, lower.ID},
			ids(storage.Filter{To: day.AddDate(0, 0, 1)}), "upper bound is exclusive")

		assert.Equal(t,
			[]int64{late.ID},
			ids(storage.Filter{Name: "Alice", From: day, To: day.AddDate(0, 0, 1)}))

		assert.Empty(t, ids(storage.Filter{Name: "Carol"}))
	})

	t.Run("ClosedStoreFails", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())

		_, err := s.Records().FetchAll()
		assert.Error(t, err)
		assert.Error(t, s.Records().Create(Record("Alice", "A1", utc(2024, 1, 10, 8, 0), time.Minute)))
	})
}
