// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker
// bound to a login session, such as the token refresher or the conversation
// poller.
//
// Start must not block: implementations spawn their own goroutine, which
// exits when ctx is cancelled, when the session it serves ends or when Stop
// is called. Stop blocks until that goroutine has returned.
//
// Example implementation:
//
//	type MyWorker struct{ job periodicJob }
//
//	func (w *MyWorker) Start(ctx context.Context) { w.job.start(ctx, ...) }
//	func (w *MyWorker) Stop()                     { w.job.stop() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
