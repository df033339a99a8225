// Package registry holds modal definitions between the text command that
// creates them and the button click that consumes them. Discord only allows
// a modal to be shown in direct response to an interaction, so the command
// handler parks the form here and the relay button retrieves it.
package registry

import (
	"sync"
	"time"

	"scriptdesk/model"
)

// ExpireFunc is called when an entry leaves the registry without being
// consumed, so the relay message can be cleaned up best-effort.
type ExpireFunc func(entry model.PendingModal)

// Registry is an in-memory store of pending modals with per-entry expiry
// and a global cap. discordgo delivers events on separate goroutines, so
// all access is mutex-guarded.
type Registry struct {
	mu       sync.Mutex
	entries  map[string]model.PendingModal
	order    []string
	ttl      time.Duration
	max      int
	onExpire ExpireFunc
}

// New creates a registry. Entries expire after ttl; once max entries are
// live, registering another evicts the oldest. onExpire may be nil.
func New(ttl time.Duration, max int, onExpire ExpireFunc) *Registry {
	return &Registry{
		entries:  make(map[string]model.PendingModal),
		ttl:      ttl,
		max:      max,
		onExpire: onExpire,
	}
}

// Register stores an entry under its token and schedules its expiry.
// Tokens carry a fresh nonce, so collisions with live entries do not occur.
func (r *Registry) Register(entry model.PendingModal) {
	r.mu.Lock()
	entry.CreatedAt = time.Now()
	r.entries[entry.Token] = entry
	r.order = append(r.order, entry.Token)
	evicted := r.evictOverCapLocked()
	r.mu.Unlock()

	for _, e := range evicted {
		if r.onExpire != nil {
			r.onExpire(e)
		}
	}

	time.AfterFunc(r.ttl, func() { r.Expire(entry.Token) })
}

// evictOverCapLocked removes oldest entries until the cap holds. Consume
// and Expire prune their tokens from the order slice, so it tracks live
// entries; the existence check stays as a guard.
func (r *Registry) evictOverCapLocked() []model.PendingModal {
	var evicted []model.PendingModal
	for len(r.entries) > r.max && len(r.order) > 0 {
		token := r.order[0]
		r.order = r.order[1:]
		if e, ok := r.entries[token]; ok {
			delete(r.entries, token)
			evicted = append(evicted, e)
		}
	}
	return evicted
}

// dropOrderLocked removes a token from the eviction order. Without this the
// order slice would grow by one stale token per command for the life of the
// process.
func (r *Registry) dropOrderLocked(token string) {
	for idx, t := range r.order {
		if t == token {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			return
		}
	}
}

// SetRelayMessage records the relay message coordinates for an entry. The
// relay message is only posted after registration, so this lands late. A
// no-op if the entry is already gone.
func (r *Registry) SetRelayMessage(token, channelID, messageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[token]; ok {
		e.RelayChannelID = channelID
		e.RelayMessageID = messageID
		r.entries[token] = e
	}
}

// Consume removes and returns the entry for a token. A token can be
// consumed at most once.
func (r *Registry) Consume(token string) (model.PendingModal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[token]
	if ok {
		delete(r.entries, token)
		r.dropOrderLocked(token)
	}
	return e, ok
}

// Expire drops an entry and runs the expiry callback. Idempotent: a no-op
// for tokens already consumed or expired. Timers are not cancelled on
// consume; they fire and land here harmlessly.
func (r *Registry) Expire(token string) {
	r.mu.Lock()
	e, ok := r.entries[token]
	if ok {
		delete(r.entries, token)
		r.dropOrderLocked(token)
	}
	r.mu.Unlock()

	if ok && r.onExpire != nil {
		r.onExpire(e)
	}
}

// Len reports the number of live entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
