// Package dispatch routes commands and queries to their single registered
// handler and fans domain events out to zero or more subscribers. The registry
// is populated explicitly at startup; a missing or duplicate handler is a
// configuration error, not a runtime surprise.
package dispatch

import (
	"context"
	"fmt"
	"reflect"
)

// Validator is implemented by commands that carry field-level validation.
// Validation runs before the handler and short-circuits it on failure.
type Validator interface {
	Validate() error
}

type handlerFunc func(ctx context.Context, cmd any) (any, error)

type eventHandler struct {
	name string
	fn   func(ctx context.Context, event any) error
}

// Dispatcher is the in-process mediator. It is safe for concurrent Send and
// Publish once registration is complete; Register and Subscribe are meant to
// run during startup wiring only.
type Dispatcher struct {
	handlers    map[reflect.Type]handlerFunc
	subscribers map[reflect.Type][]eventHandler
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers:    make(map[reflect.Type]handlerFunc),
		subscribers: make(map[reflect.Type][]eventHandler),
	}
}

// Register binds a command type to its single handler.
// Registering a second handler for the same command type fails.
func Register[C any, R any](d *Dispatcher, h func(ctx context.Context, cmd C) (R, error)) error {
	t := reflect.TypeOf(*new(C))
	if _, dup := d.handlers[t]; dup {
		return fmt.Errorf("dispatch: handler already registered for %s", t)
	}
	d.handlers[t] = func(ctx context.Context, cmd any) (any, error) {
		return h(ctx, cmd.(C))
	}
	return nil
}

// MustRegister is Register that panics on a duplicate. Startup wiring uses it
// so a misconfigured registry kills the process before it serves traffic.
func MustRegister[C any, R any](d *Dispatcher, h func(ctx context.Context, cmd C) (R, error)) {
	if err := Register(d, h); err != nil {
		panic(err)
	}
}

// Send resolves the handler registered for cmd's type and invokes it. If cmd
// implements Validator, validation runs first and a failure short-circuits the
// handler entirely.
func Send[C any, R any](ctx context.Context, d *Dispatcher, cmd C) (R, error) {
	var zero R

	h, ok := d.handlers[reflect.TypeOf(cmd)]
	if !ok {
		return zero, fmt.Errorf("dispatch: no handler registered for %T", cmd)
	}

	if v, ok := any(cmd).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}

	res, err := h(ctx, cmd)
	if err != nil {
		return zero, err
	}
	r, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("dispatch: handler for %T returned %T", cmd, res)
	}
	return r, nil
}

// Subscribe appends an event handler for events of type E. Handlers run in
// registration order. The name identifies the subscriber in errors.
func Subscribe[E any](d *Dispatcher, name string, h func(ctx context.Context, event E) error) {
	t := reflect.TypeOf(*new(E))
	d.subscribers[t] = append(d.subscribers[t], eventHandler{
		name: name,
		fn: func(ctx context.Context, event any) error {
			return h(ctx, event.(E))
		},
	})
}

// Publish invokes every subscriber for the event's type sequentially, in
// registration order. The first failing subscriber stops propagation and its
// error surfaces to the publisher; subscribers that already ran are not undone.
// An event with no subscribers is a no-op.
func (d *Dispatcher) Publish(ctx context.Context, event any) error {
	for _, sub := range d.subscribers[reflect.TypeOf(event)] {
		if err := sub.fn(ctx, event); err != nil {
			return fmt.Errorf("dispatch: subscriber %s: %w", sub.name, err)
		}
	}
	return nil
}
