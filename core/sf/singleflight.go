package sf

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Singleflight deduplicates concurrent function calls with the same key.
// Only the first caller executes the function; others wait and receive
// the same result.
type Singleflight[K comparable, T any] struct {
	group singleflight.Group

	mu    sync.Mutex
	seq   uint64
	names map[K]*flightName
}

// flightName is the group key of every call for one K that is in flight.
type flightName struct {
	name string
	refs int
}

// Do executes fn for key unless a call for the same key is already in
// flight, in which case it waits for that call and shares its result.
func (s *Singleflight[K, T]) Do(key K, fn func() (*T, error)) (*T, error) {
	name := s.acquire(key)
	defer s.release(key)

	v, err, _ := s.group.Do(name, func() (any, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

// acquire returns the group key for key. Calls for equal keys that overlap
// share a name; distinct keys never do.
func (s *Singleflight[K, T]) acquire(key K) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.names == nil {
		s.names = make(map[K]*flightName)
	}
	n, ok := s.names[key]
	if !ok {
		s.seq++
		n = &flightName{name: strconv.FormatUint(s.seq, 36)}
		s.names[key] = n
	}
	n.refs++
	return n.name
}

func (s *Singleflight[K, T]) release(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.names[key]
	if n.refs--; n.refs == 0 {
		delete(s.names, key)
	}
}

// New creates a Singleflight for keys of type K and results of type T.
func New[K comparable, T any]() *Singleflight[K, T] {
	return &Singleflight[K, T]{}
}
