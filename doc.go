// Package thimble is a construction-interception helper for unit testing.
//
// Production code swaps a direct constructor call for a bound one, and
// tests substitute real dependencies with doubles without changing the
// production wiring:
//
//	newServer := thimble.MustBind[*Server](f, NewServer)
//
//	srv, err := newServer("localhost", 8080)
//
// # Overrides
//
// Each resolution walks a three-tier chain. A queued one-shot instance is
// served first (FIFO, consumed exactly once per entry), then a persistent
// override, and only then is the real constructor called with the
// supplied arguments:
//
//	thimble.QueueOnce(f, &Server{Name: "first call only"})
//	thimble.SetPersistent(f, &Server{Name: "every later call"})
//
//	thimble.Clear[*Server](f) // drop both tiers for one type
//	f.Reset()                 // drop everything, labels included
//
// The precedence holds regardless of the order the overrides were set up
// in, and every invocation of a bound constructor is resolved from
// scratch.
//
// # Construction notification
//
// A constructed type may opt in to receiving the arguments it was built
// with by implementing ParamReceiver:
//
//	func (s *Server) ReceiveConstructionParams(params []thimble.Param) {
//	    s.buildArgs = params
//	}
//
// The capability is detected with a type assertion after each real
// construction; overridden resolutions never notify.
//
// # Labels
//
// Factories also keep an identity↔label table for naming objects in test
// output:
//
//	f.LabelAs(conn, "primary")
//	f.Label(other)              // "auto_1", "auto_2", ...
//	obj, ok := f.ByLabel("primary")
//
// # The default factory
//
// Default() returns a lazily created process-wide factory. Generic
// operations accept nil to target it, and package-level functions mirror
// the Factory methods:
//
//	thimble.QueueOnce[*Server](nil, stub)
//	thimble.Reset()
//
// # Concurrency
//
// A Factory is meant for single-goroutine test execution and is not safe
// for concurrent mutation; wrap it in external locking if a test spawns
// goroutines that share one instance. Only Default()'s initialization is
// synchronized.
//
// # Observability
//
// Resolution decisions log at debug level through the *slog.Logger given
// via WithLogger, and observer hooks expose the served tier:
//
//	f := thimble.New(
//	    thimble.WithResolveObserver(func(key string, src thimble.Source, err error) {
//	        metrics.RecordResolve(key, src, err)
//	    }),
//	)
//
// State(), SprintState() and friends render the current override and
// label tables for debugging.
package thimble
