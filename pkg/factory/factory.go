package factory

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/bft-labs/appengine/pkg/engine"
)

// key gives every concrete type T its own comparable map key.
type key[T any] struct{}

// slot holds one type's constructor and its lazily built instance.
type slot[T engine.Engine] struct {
	ctor     func() T
	once     sync.Once
	instance T
	err      error
}

// build runs ctor once. A panic or a nil result is kept as err so that
// no caller ever sees a half-built instance.
func (s *slot[T]) build() {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			s.instance = zero
			s.err = fmt.Errorf("%w: %s: panic: %v", ErrConstruction, typeName[T](), r)
		}
	}()
	inst := s.ctor()
	if isNil(inst) {
		s.err = fmt.Errorf("%w: %s: constructor returned nil", ErrConstruction, typeName[T]())
		return
	}
	s.instance = inst
}

var (
	mu       sync.RWMutex
	registry = map[any]any{}
)

// Register records the constructor used to build the singleton of T.
func Register[T engine.Engine](ctor func() T) error {
	if ctor == nil {
		return fmt.Errorf("%w: nil constructor for %s", ErrNotRegistered, typeName[T]())
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[key[T]{}]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, typeName[T]())
	}
	registry[key[T]{}] = &slot[T]{ctor: ctor}
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister[T engine.Engine](ctor func() T) {
	if err := Register(ctor); err != nil {
		panic(err)
	}
}

// Registered reports whether T has a constructor.
func Registered[T engine.Engine]() bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[key[T]{}]
	return ok
}

// Instance returns the singleton of T, building it on first use.
// Concurrent first calls build it exactly once and all observe the same value.
// If construction failed, every call returns the same ErrConstruction.
func Instance[T engine.Engine]() (T, error) {
	mu.RLock()
	entry, ok := registry[key[T]{}]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotRegistered, typeName[T]())
	}

	s := entry.(*slot[T])
	s.once.Do(s.build)
	if s.err != nil {
		var zero T
		return zero, s.err
	}
	return s.instance, nil
}

// For resolves typ to the singleton of T.
//
// It fails with ErrUnsupportedType for values outside the closed set and
// with ErrTypeMismatch when T cannot serve typ. Types that are known but
// have no implementation yet return a nil Engine and a nil error.
func For[T engine.Engine](typ engine.Type) (engine.Engine, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}

	switch typ {
	case engine.DefaultConsole:
		var zero T
		if !engine.IsConsole(zero) {
			return nil, fmt.Errorf("%w: %s does not embed engine.Console", ErrTypeMismatch, typeName[T]())
		}
		inst, err := Instance[T]()
		if err != nil {
			return nil, err
		}
		return inst, nil
	default:
		// Known, not implemented yet.
		return nil, nil
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
