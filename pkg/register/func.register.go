package register

import "sync"

// Handler is an init-time wiring callback. Packages register handlers under a
// shared key from their init functions; the owner of the key resolves and
// runs them once its dependencies exist.
type Handler[T any] func(T)

var (
	mu       sync.Mutex
	handlers = make(map[any][]any)
)

func RegisterFunc[T any](key any, handler Handler[T]) {
	mu.Lock()
	defer mu.Unlock()
	handlers[key] = append(handlers[key], handler)
}

// ResolveFuncHandlers returns the handlers registered under key whose
// parameter type matches T; mismatched registrations are skipped.
func ResolveFuncHandlers[T any](key any) []Handler[T] {
	mu.Lock()
	defer mu.Unlock()

	var matched []Handler[T]
	for _, h := range handlers[key] {
		if fn, ok := h.(Handler[T]); ok {
			matched = append(matched, fn)
		}
	}
	return matched
}
