package calendar

import (
	"errors"
	"sync"
)

// ErrNoBaseDocument is returned when a scoped merge is attempted with no
// document present.
var ErrNoBaseDocument = errors.New("no base document to merge into")

// Store holds the authoritative calendar document. All mutations are
// whole-value replacements; readers always observe a complete document.
type Store struct {
	mu      sync.RWMutex
	current *Document
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceFull unconditionally installs doc as the current document.
func (s *Store) ReplaceFull(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := cloneDocument(doc)
	s.current = &d
}

// MergeWeek produces a new document equal to the current one except the week
// whose number matches weekNumber is replaced by updated, with its
// weekNumber forced to the requested number. If no week matches, the update
// is dropped: a scoped operation never grows the week sequence.
func (s *Store) MergeWeek(weekNumber int, updated Week) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoBaseDocument
	}

	updated.WeekNumber = weekNumber

	next := cloneDocument(*s.current)
	for i, w := range next.Weeks {
		if w.WeekNumber == weekNumber {
			next.Weeks[i] = updated
			break
		}
	}
	s.current = &next
	return nil
}

// Clear resets the store to the absent state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns a copy of the current document, if one is present.
func (s *Store) Current() (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Document{}, false
	}
	return cloneDocument(*s.current), true
}

// cloneDocument copies the week sequence and each week's post sequence so
// the store and its readers never share mutable backing arrays.
func cloneDocument(doc Document) Document {
	weeks := make([]Week, len(doc.Weeks))
	for i, w := range doc.Weeks {
		posts := make([]Post, len(w.Posts))
		copy(posts, w.Posts)
		w.Posts = posts
		weeks[i] = w
	}
	doc.Weeks = weeks
	return doc
}
