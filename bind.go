package thimble

import (
	reflectPkg "reflect"

	"github.com/danpasecinic/thimble/internal/reflect"
)

// Constructor is a bound construction request for T. Every invocation runs
// the full override chain again; nothing about a previous resolution is
// cached.
type Constructor[T any] func(args ...any) (T, error)

var errorType = reflectPkg.TypeOf((*error)(nil)).Elem()

// Bind curries a construction request for T over ctor, the type's real
// constructor. The returned Constructor resolves each invocation through
// the override chain: a queued one-shot instance wins over a persistent
// override, which wins over calling ctor with the supplied arguments.
//
// ctor must be a function returning T, or T and an error. An error
// returned by ctor is handed back unmodified, and a failed construction
// leaves the factory's tables exactly as they were. Argument-count or
// argument-type mismatches surface as the reflect.Call panic rather than
// being masked.
//
// A nil factory binds against Default().
func Bind[T any](f *Factory, ctor any) (Constructor[T], error) {
	f = orDefault(f)
	key := reflect.TypeKey[T]()

	fnVal := reflectPkg.ValueOf(ctor)
	if !fnVal.IsValid() || fnVal.Kind() != reflectPkg.Func {
		return nil, errInvalidConstructor(reflect.TypeName[T](), "not a function")
	}

	fnType := fnVal.Type()
	if fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return nil, errInvalidConstructor(reflect.TypeName[T](), "must return T or (T, error)")
	}

	want := reflectPkg.TypeOf((*T)(nil)).Elem()
	if !fnType.Out(0).AssignableTo(want) {
		return nil, errInvalidConstructor(
			reflect.TypeName[T](),
			"returns "+fnType.Out(0).String(),
		)
	}

	hasErr := fnType.NumOut() == 2
	if hasErr && !fnType.Out(1).Implements(errorType) {
		return nil, errInvalidConstructor(reflect.TypeName[T](), "second return value must be error")
	}

	return func(args ...any) (T, error) {
		var zero T

		if instance, ok := f.registry.DequeueFront(key); ok {
			typed, ok := instance.(T)
			if !ok {
				err := errTypeMismatch(reflect.TypeName[T]())
				f.notifyResolve(key, SourceQueued, err)
				return zero, err
			}
			f.config.logger.Debug("serving one-shot override", "type", key, "remaining", f.registry.QueueLen(key))
			f.notifyResolve(key, SourceQueued, nil)
			return typed, nil
		}

		if instance, ok := f.registry.Persistent(key); ok {
			typed, ok := instance.(T)
			if !ok {
				err := errTypeMismatch(reflect.TypeName[T]())
				f.notifyResolve(key, SourcePersistent, err)
				return zero, err
			}
			f.config.logger.Debug("serving persistent override", "type", key)
			f.notifyResolve(key, SourcePersistent, nil)
			return typed, nil
		}

		in := make([]reflectPkg.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = zeroArg(fnType, i)
			} else {
				in[i] = reflectPkg.ValueOf(arg)
			}
		}

		results := fnVal.Call(in)
		if hasErr && !results[1].IsNil() {
			err := results[1].Interface().(error)
			f.notifyResolve(key, SourceConstructed, err)
			return zero, err
		}

		instance := results[0].Interface().(T)
		if receiver, ok := any(instance).(ParamReceiver); ok {
			receiver.ReceiveConstructionParams(constructionParams(args))
		}

		f.config.logger.Debug("constructed instance", "type", key, "args", len(args))
		f.notifyResolve(key, SourceConstructed, nil)
		return instance, nil
	}, nil
}

// MustBind is Bind, panicking on an invalid constructor.
func MustBind[T any](f *Factory, ctor any) Constructor[T] {
	constructor, err := Bind[T](f, ctor)
	if err != nil {
		panic(err)
	}
	return constructor
}

// zeroArg maps an untyped nil argument to the zero value of the matching
// parameter so that callers can pass nil for pointer or interface
// parameters. Out-of-range positions fall through to reflect.Call's own
// arity check.
func zeroArg(fnType reflectPkg.Type, i int) reflectPkg.Value {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return reflectPkg.Zero(fnType.In(fnType.NumIn() - 1).Elem())
	}
	if i < fnType.NumIn() {
		return reflectPkg.Zero(fnType.In(i))
	}
	return reflectPkg.Zero(reflectPkg.TypeOf((*any)(nil)).Elem())
}
