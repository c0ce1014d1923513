package service

import (
	"fmt"

	"shark-tracker/internal/features/surfaces/domain"
)

// Navigator links the list and the map. Lookups are linear over the rendered
// collections.
type Navigator struct {
	list   *ListSurface
	mapper *MapSurface
}

// NewNavigator creates a Navigator.
func NewNavigator(list *ListSurface, mapper *MapSurface) *Navigator {
	return &Navigator{
		list:   list,
		mapper: mapper,
	}
}

// SelectListItem centers the map on the ping of the selected row.
func (n *Navigator) SelectListItem(pingID string) (domain.CameraPosition, error) {
	row, ok := n.list.Row(pingID)
	if !ok {
		return domain.CameraPosition{}, fmt.Errorf("%w: %s", domain.ErrPingNotVisible, pingID)
	}
	return n.mapper.FocusOn(row.Position), nil
}

// SelectMarker scrolls the list to the row of the selected marker and
// returns the row index.
func (n *Navigator) SelectMarker(pingID string) (int, error) {
	if _, ok := n.mapper.Marker(pingID); !ok {
		return -1, fmt.Errorf("%w: no marker %s", domain.ErrPingNotVisible, pingID)
	}

	index, ok := n.list.IndexOf(pingID)
	if !ok {
		return -1, fmt.Errorf("%w: no row %s", domain.ErrPingNotVisible, pingID)
	}

	n.list.ScrollTo(index)
	return index, nil
}
