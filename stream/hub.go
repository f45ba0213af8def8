package stream

import "sync"

const subscriberBuffer = 100

// Hub fans accepted submissions out to websocket subscribers, one topic
// per form. Publish never blocks: a subscriber that falls behind loses
// events rather than stalling the writer.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint]map[chan []byte]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint]map[chan []byte]struct{})}
}

// Subscribe registers a listener for one form. The returned cancel func
// closes the channel; calling it more than once is harmless.
func (h *Hub) Subscribe(formID uint) (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)

	h.mu.Lock()
	if h.subs[formID] == nil {
		h.subs[formID] = make(map[chan []byte]struct{})
	}
	h.subs[formID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[formID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, formID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) Publish(formID uint, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[formID] {
		select {
		case ch <- payload:
		default:
		}
	}
}
