package adapter

import (
	"slices"
	"sync"

	"shark-tracker/internal/features/surfaces/domain"
)

// HeadlessList is a ListRenderer that keeps what it was told to show.
type HeadlessList struct {
	mu   sync.RWMutex
	view domain.ListView
}

// NewHeadlessList creates an empty HeadlessList.
func NewHeadlessList() *HeadlessList {
	return &HeadlessList{
		view: domain.ListView{
			Rows:        []domain.ListRow{},
			ScrollIndex: -1,
			Messages:    []string{},
		},
	}
}

func (l *HeadlessList) SubmitRows(rows []domain.ListRow) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.view.Rows = slices.Clone(rows)
}

func (l *HeadlessList) ScrollTo(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.view.ScrollIndex = index
}

func (l *HeadlessList) ShowProgress(visible bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.view.Progress = visible
}

func (l *HeadlessList) ShowMessage(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.view.Messages = append(l.view.Messages, message)
}

// ListView returns a copy of the current view.
func (l *HeadlessList) ListView() domain.ListView {
	l.mu.RLock()
	defer l.mu.RUnlock()

	view := l.view
	view.Rows = slices.Clone(l.view.Rows)
	view.Messages = slices.Clone(l.view.Messages)
	return view
}
