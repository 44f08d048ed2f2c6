package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWeekDocument() Document {
	return Document{
		Summary: Summary{Month: "March", Year: 2026, TotalPosts: 2},
		Weeks: []Week{
			{WeekNumber: 1, DateRange: "March 1 - March 7", Posts: []Post{{Day: "Monday"}}},
			{WeekNumber: 2, DateRange: "March 8 - March 14", Posts: []Post{{Day: "Friday"}}},
		},
	}
}

func TestStore_EmptyUntilReplace(t *testing.T) {
	s := NewStore()
	_, ok := s.Current()
	assert.False(t, ok)

	s.ReplaceFull(twoWeekDocument())
	doc, ok := s.Current()
	require.True(t, ok)
	assert.Len(t, doc.Weeks, 2)
}

func TestStore_MergeWeekReplacesOnlyTarget(t *testing.T) {
	s := NewStore()
	s.ReplaceFull(twoWeekDocument())

	updated := Week{WeekNumber: 2, DateRange: "March 8 - March 14 (rev)", Posts: []Post{{Day: "Saturday"}}}
	require.NoError(t, s.MergeWeek(2, updated))

	doc, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, twoWeekDocument().Summary, doc.Summary)
	assert.Equal(t, twoWeekDocument().Weeks[0], doc.Weeks[0])
	assert.Equal(t, updated, doc.Weeks[1])
}

func TestStore_MergeWeekForcesWeekNumber(t *testing.T) {
	s := NewStore()
	s.ReplaceFull(twoWeekDocument())

	// Agent mislabeled the regenerated week; the requested number wins.
	require.NoError(t, s.MergeWeek(1, Week{WeekNumber: 7, Posts: []Post{{Day: "Sunday"}}}))

	doc, _ := s.Current()
	assert.Equal(t, 1, doc.Weeks[0].WeekNumber)
	assert.Equal(t, "Sunday", doc.Weeks[0].Posts[0].Day)
}

func TestStore_MergeWeekNoMatchIsDropped(t *testing.T) {
	s := NewStore()
	s.ReplaceFull(twoWeekDocument())

	require.NoError(t, s.MergeWeek(9, Week{WeekNumber: 9, Posts: []Post{{Day: "Never"}}}))

	doc, _ := s.Current()
	assert.Equal(t, twoWeekDocument(), doc)
}

func TestStore_MergeWeekWithoutBase(t *testing.T) {
	s := NewStore()
	err := s.MergeWeek(1, Week{WeekNumber: 1})
	assert.ErrorIs(t, err, ErrNoBaseDocument)

	s.ReplaceFull(twoWeekDocument())
	s.Clear()
	err = s.MergeWeek(1, Week{WeekNumber: 1})
	assert.ErrorIs(t, err, ErrNoBaseDocument)
}

func TestStore_MergeWeekAfterReplace(t *testing.T) {
	// A stale scoped result landing after a full replacement is still
	// applied to the new document's matching week; there is no epoch check.
	s := NewStore()
	s.ReplaceFull(twoWeekDocument())

	fresh := twoWeekDocument()
	fresh.Summary.Month = "April"
	s.ReplaceFull(fresh)

	require.NoError(t, s.MergeWeek(1, Week{WeekNumber: 1, Posts: nil}))
	doc, _ := s.Current()
	assert.Equal(t, "April", doc.Summary.Month)
	assert.Empty(t, doc.Weeks[0].Posts)
}

func TestStore_ReadersGetCopies(t *testing.T) {
	s := NewStore()
	s.ReplaceFull(twoWeekDocument())

	doc, _ := s.Current()
	doc.Weeks[0].Posts[0].Day = "Mutated"
	doc.Weeks[1].DateRange = "Mutated"

	again, _ := s.Current()
	assert.Equal(t, "Monday", again.Weeks[0].Posts[0].Day)
	assert.Equal(t, "March 8 - March 14", again.Weeks[1].DateRange)
}
