package thimble

// Source identifies which tier of the override chain served a resolution.
type Source int

const (
	SourceQueued Source = iota
	SourcePersistent
	SourceConstructed
)

var sourceNames = map[Source]string{
	SourceQueued:      "queued",
	SourcePersistent:  "persistent",
	SourceConstructed: "constructed",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "unknown"
}

// ResolveHook observes every invocation of a bound constructor.
type ResolveHook func(key string, source Source, err error)

// OverrideHook observes every QueueOnce and SetPersistent registration.
type OverrideHook func(key string)
