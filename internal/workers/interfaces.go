// Package workers provides abstractions for managing and running
// background workers of the API server.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the work itself
// happens on goroutines owned by the worker (or by the event bus it
// subscribes to). Stop releases them.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() error {
//	    return bus.Subscribe("topic", w.handle)
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run() error
	Stop()
}

// EventBus is the subscription side of the event bus.
type EventBus interface {
	Subscribe(topic string, fn any) error
	Unsubscribe(topic string, fn any) error
}
