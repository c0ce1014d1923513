package adapter

import (
	"context"
	"fmt"
	"sync"

	"shark-tracker/internal/features/surfaces/domain"
)

// Permission modes accepted by NewStaticPermission.
const (
	PermissionModeGranted       = "granted"
	PermissionModeDenied        = "denied"
	PermissionModePromptGranted = "prompt-granted"
	PermissionModePromptDenied  = "prompt-denied"
)

// StaticPermission is a LocationPermission with a configured outcome.
// The prompt modes start ungranted and answer the first Request.
type StaticPermission struct {
	mu      sync.Mutex
	mode    string
	granted bool
}

// NewStaticPermission creates a StaticPermission for one of the permission modes.
func NewStaticPermission(mode string) (*StaticPermission, error) {
	switch mode {
	case PermissionModeGranted:
		return &StaticPermission{mode: mode, granted: true}, nil
	case PermissionModeDenied, PermissionModePromptGranted, PermissionModePromptDenied:
		return &StaticPermission{mode: mode}, nil
	default:
		return nil, fmt.Errorf("unknown location permission mode: %q", mode)
	}
}

// Has reports whether the permission is granted.
func (p *StaticPermission) Has() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.granted
}

// Request resolves the permission prompt.
func (p *StaticPermission) Request(ctx context.Context) (domain.PermissionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PermissionDenied, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == PermissionModePromptGranted {
		p.granted = true
	}
	if p.granted {
		return domain.PermissionGranted, nil
	}
	return domain.PermissionDenied, nil
}
