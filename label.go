package thimble

// Label returns obj's label, assigning a generated one on first sight.
// Generated labels have the form auto_<N>; the counter advances only when
// a label is actually generated, and resets with Factory.Reset.
//
// Objects are keyed by identity: pointers by pointer equality, other
// comparable values by value. obj must be comparable.
func (f *Factory) Label(obj any) string {
	if label, ok := f.registry.LabelOf(obj); ok {
		return label
	}

	label := f.registry.NextAuto()
	f.registry.Assign(obj, label)
	f.config.logger.Debug("assigned label", "label", label)
	return label
}

// LabelAs registers obj under label. Registering an object under the label
// it already holds is a no-op returning that label. Re-labeling an object
// moves both directions of the table to the new label but returns the
// label the object previously had.
func (f *Factory) LabelAs(obj any, label string) string {
	existing, ok := f.registry.LabelOf(obj)
	if ok && existing == label {
		return existing
	}

	f.registry.Assign(obj, label)
	f.config.logger.Debug("assigned label", "label", label)

	if ok {
		return existing
	}
	return label
}

// ByLabel returns the object registered under label.
func (f *Factory) ByLabel(label string) (any, bool) {
	return f.registry.ByLabel(label)
}

// LabelOf returns the label registered for obj.
func (f *Factory) LabelOf(obj any) (string, bool) {
	return f.registry.LabelOf(obj)
}
