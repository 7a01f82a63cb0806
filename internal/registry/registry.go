package registry

import "strconv"

// Registry holds the override tables and the label table for one factory.
// It is not safe for concurrent use; the owning factory documents the
// single-goroutine contract.
type Registry struct {
	queued     map[string][]any
	persistent map[string]any

	// labelOf and objectOf are two views of one bidirectional table and
	// are kept consistent by Assign.
	labelOf  map[any]string
	objectOf map[string]any
	nextAuto int
}

func New() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Enqueue appends instance to key's one-shot queue. Duplicates are kept;
// each entry is served exactly once.
func (r *Registry) Enqueue(key string, instance any) {
	r.queued[key] = append(r.queued[key], instance)
}

// DequeueFront removes and returns the oldest queued instance for key.
func (r *Registry) DequeueFront(key string) (any, bool) {
	q, ok := r.queued[key]
	if !ok || len(q) == 0 {
		return nil, false
	}

	instance := q[0]
	if len(q) == 1 {
		delete(r.queued, key)
	} else {
		r.queued[key] = q[1:]
	}
	return instance, true
}

func (r *Registry) QueueLen(key string) int {
	return len(r.queued[key])
}

// SetPersistent records instance as key's persistent override. Last write
// wins.
func (r *Registry) SetPersistent(key string, instance any) {
	r.persistent[key] = instance
}

func (r *Registry) Persistent(key string) (any, bool) {
	instance, ok := r.persistent[key]
	return instance, ok
}

func (r *Registry) HasPersistent(key string) bool {
	_, ok := r.persistent[key]
	return ok
}

// Clear drops key from both override tables. Labels are untouched.
func (r *Registry) Clear(key string) {
	delete(r.queued, key)
	delete(r.persistent, key)
}

func (r *Registry) HasOverride(key string) bool {
	if len(r.queued[key]) > 0 {
		return true
	}
	_, ok := r.persistent[key]
	return ok
}

// Keys returns every key with at least one override, queued or persistent.
func (r *Registry) Keys() []string {
	seen := make(map[string]struct{}, len(r.queued)+len(r.persistent))
	for key := range r.queued {
		seen[key] = struct{}{}
	}
	for key := range r.persistent {
		seen[key] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	return keys
}

func (r *Registry) Size() int {
	return len(r.Keys())
}

// Reset restores the initial empty state: both override tables, both label
// directions, and the auto-label counter.
func (r *Registry) Reset() {
	r.queued = make(map[string][]any)
	r.persistent = make(map[string]any)
	r.labelOf = make(map[any]string)
	r.objectOf = make(map[string]any)
	r.nextAuto = 1
}

// LabelOf returns the label registered for obj, if any. Objects compare by
// identity: pointer equality for pointers, value equality for other
// comparable values.
func (r *Registry) LabelOf(obj any) (string, bool) {
	label, ok := r.labelOf[obj]
	return label, ok
}

// ByLabel returns the object registered under label, if any.
func (r *Registry) ByLabel(label string) (any, bool) {
	obj, ok := r.objectOf[label]
	return obj, ok
}

// Assign points obj and label at each other, displacing any previous label
// held by obj and any previous holder of label so the two directions never
// disagree.
func (r *Registry) Assign(obj any, label string) {
	if old, ok := r.labelOf[obj]; ok {
		delete(r.objectOf, old)
	}
	if prev, ok := r.objectOf[label]; ok {
		delete(r.labelOf, prev)
	}
	r.labelOf[obj] = label
	r.objectOf[label] = obj
}

// NextAuto returns the next generated label and advances the counter.
// Generated labels have the form auto_<N>, N starting at 1.
func (r *Registry) NextAuto() string {
	label := "auto_" + strconv.Itoa(r.nextAuto)
	r.nextAuto++
	return label
}

// AllLabels returns a copy of the label→object direction.
func (r *Registry) AllLabels() map[string]any {
	labels := make(map[string]any, len(r.objectOf))
	for label, obj := range r.objectOf {
		labels[label] = obj
	}
	return labels
}
