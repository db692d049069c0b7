package services

import (
	"sync"
	"time"

	"chanager/internal/core/domain"
	"chanager/internal/core/ports"
)

// PickerLifetime matches how long Discord keeps an interaction token, and
// with it an ephemeral picker, usable.
const PickerLifetime = 15 * time.Minute

type registryEntry struct {
	picker  *CategorySelect
	expires time.Time
}

// SelectRegistry hands out one CategorySelect per rendered picker message,
// so every event delivered for that message shares the same state machine.
type SelectRegistry struct {
	gateway  ports.ChannelGateway
	channels *ChannelService
	lifetime time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]registryEntry
}

func NewSelectRegistry(gateway ports.ChannelGateway, channels *ChannelService) *SelectRegistry {
	return &SelectRegistry{
		gateway:  gateway,
		channels: channels,
		lifetime: PickerLifetime,
		now:      time.Now,
		entries:  make(map[string]registryEntry),
	}
}

// Open returns the picker registered under key, creating it for binding on
// first use. Expired entries are dropped on every call.
func (r *SelectRegistry) Open(key string, binding domain.SelectBinding) *CategorySelect {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, e := range r.entries {
		if now.After(e.expires) {
			delete(r.entries, k)
		}
	}

	if e, ok := r.entries[key]; ok {
		return e.picker
	}

	picker := NewCategorySelect(binding, r.gateway, r.channels)
	r.entries[key] = registryEntry{picker: picker, expires: now.Add(r.lifetime)}
	return picker
}

// Len reports how many pickers are tracked.
func (r *SelectRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
