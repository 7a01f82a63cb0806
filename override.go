package thimble

import "github.com/danpasecinic/thimble/internal/reflect"

// QueueOnce appends instance to T's one-shot queue. Each queued instance
// is served exactly once, in insertion order, before any persistent
// override or real construction is considered. The same instance may be
// queued multiple times. A nil factory targets Default().
func QueueOnce[T any](f *Factory, instance T) {
	f = orDefault(f)
	key := reflect.TypeKey[T]()

	f.registry.Enqueue(key, instance)
	f.config.logger.Debug("queued one-shot override", "type", key, "depth", f.registry.QueueLen(key))
	f.notifyOverride(key)
}

// SetPersistent records instance as the answer for every resolution of T
// once its one-shot queue is drained. Calling it again replaces the
// previous value. A nil factory targets Default().
func SetPersistent[T any](f *Factory, instance T) {
	f = orDefault(f)
	key := reflect.TypeKey[T]()

	f.registry.SetPersistent(key, instance)
	f.config.logger.Debug("set persistent override", "type", key)
	f.notifyOverride(key)
}

// Clear removes T's queued and persistent overrides. Labels are not
// affected; use Factory.Reset for a full reset. No-op when T has no
// overrides. A nil factory targets Default().
func Clear[T any](f *Factory) {
	f = orDefault(f)
	key := reflect.TypeKey[T]()

	f.registry.Clear(key)
	f.config.logger.Debug("cleared overrides", "type", key)
}

// HasOverride reports whether T currently has a queued or persistent
// override. A nil factory targets Default().
func HasOverride[T any](f *Factory) bool {
	f = orDefault(f)
	return f.registry.HasOverride(reflect.TypeKey[T]())
}
