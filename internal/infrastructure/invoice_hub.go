package infrastructure

import (
	"sync"

	"golang.org/x/time/rate"
)

// InvoiceHub fans invoice change notifications out to dashboard
// subscribers. Events carry no payload: receiving one means "re-fetch the
// invoice list for your property". Bursts from the database are coalesced
// by a small per-subscriber buffer and a token-bucket limiter so a noisy
// import does not translate into a reload storm.
type InvoiceHub struct {
	mu   sync.RWMutex
	subs map[string]map[*InvoiceSubscription]struct{} // property id -> subscribers
}

// InvoiceSubscription is a handle scoped to one property selection. The
// owner must call Close when the selection changes or the view goes away;
// a forgotten handle leaks a channel per prior selection.
type InvoiceSubscription struct {
	hub        *InvoiceHub
	propertyID string
	events     chan struct{}
	limiter    *rate.Limiter
	closeOnce  sync.Once
}

func NewInvoiceHub() *InvoiceHub {
	return &InvoiceHub{
		subs: make(map[string]map[*InvoiceSubscription]struct{}),
	}
}

// Subscribe registers interest in invoice changes for one property.
func (h *InvoiceHub) Subscribe(propertyID string) *InvoiceSubscription {
	sub := &InvoiceSubscription{
		hub:        h,
		propertyID: propertyID,
		events:     make(chan struct{}, 1),
		// At most 2 reload signals per second, bursts of 1.
		limiter: rate.NewLimiter(2, 1),
	}

	h.mu.Lock()
	set, ok := h.subs[propertyID]
	if !ok {
		set = make(map[*InvoiceSubscription]struct{})
		h.subs[propertyID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Notify signals every subscriber of the given property. Subscribers that
// already have a pending event, or that are over their reload budget, are
// skipped; the pending event already forces a full re-fetch.
func (h *InvoiceHub) Notify(propertyID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[propertyID] {
		if !sub.limiter.Allow() {
			continue
		}
		select {
		case sub.events <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount reports how many handles are open for a property.
func (h *InvoiceHub) SubscriberCount(propertyID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[propertyID])
}

// Events delivers one value per coalesced change notification. The channel
// is closed by Close.
func (s *InvoiceSubscription) Events() <-chan struct{} {
	return s.events
}

// Close releases the subscription. Safe to call more than once.
func (s *InvoiceSubscription) Close() {
	s.closeOnce.Do(func() {
		h := s.hub
		h.mu.Lock()
		if set, ok := h.subs[s.propertyID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(h.subs, s.propertyID)
			}
		}
		h.mu.Unlock()
		close(s.events)
	})
}
