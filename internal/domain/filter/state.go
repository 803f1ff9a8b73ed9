package filter

import "sync"

// SetSearchedQuery is the message a Card publishes whenever its selection
// changes.
type SetSearchedQuery struct {
	Query string
}

// Publisher receives the messages emitted by a Card.
type Publisher interface {
	Dispatch(msg SetSearchedQuery)
}

// Subscriber is notified after State applied a message.
type Subscriber func(query string)

// State is the shared application state the filter card writes into. One
// State is created per session and handed to every component that needs the
// searched query.
type State struct {
	mu            sync.RWMutex
	searchedQuery string
	subscribers   []Subscriber
}

func NewState() *State {
	return &State{}
}

func (s *State) SearchedQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchedQuery
}

func (s *State) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Dispatch stores the query and then calls subscribers in registration
// order, outside the lock.
func (s *State) Dispatch(msg SetSearchedQuery) {
	s.mu.Lock()
	s.searchedQuery = msg.Query
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(msg.Query)
	}
}
