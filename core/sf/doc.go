// Package sf provides a typed single-flight mechanism for deduplicating
// concurrent function calls with the same key.
//
// If several goroutines call [Singleflight.Do] with the same key at the same
// time, the function runs once and every caller gets its result. Keys are
// compared with ==, so the dynamic value of an interface key must be
// comparable.
//
//	flight := sf.New[string, Conn]()
//
//	conn, err := flight.Do("db-1", func() (*Conn, error) {
//	    return dial("db-1")
//	})
package sf
