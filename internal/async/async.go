// Package async provides a small future helper for running git operations
// concurrently. Each call owns its own process handle and accumulator state,
// so any number of operations may be in flight at once; "cancelling" one
// means discarding its eventual result, never killing the process.
package async

// Result couples an operation's value with the error that produced it.
type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn in its own goroutine and returns a buffered channel that yields
// its result exactly once. The channel is buffered, so a caller that walks
// away does not leak the goroutine.
func Go[T any](fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		v, err := fn()
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// Await blocks until the future resolves and unpacks it.
func Await[T any](ch <-chan Result[T]) (T, error) {
	r := <-ch
	return r.Value, r.Err
}
