package optimize

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-anim/anim/keyframe"
)

// Names of the built-in reducers.
const (
	NameDuplicate       = "duplicate"
	NameSimilarPoint    = "similarPoint"
	NameSlopeSimilarity = "slopeSimilarity"
)

// Builtins returns the built-in reducer names in run order.
func Builtins() []string {
	return []string{NameDuplicate, NameSimilarPoint, NameSlopeSimilarity}
}

// Verdict is a reducer's judgement of one window.
type Verdict int

// Verdicts a reducer can return for a window.
const (
	// Keep leaves every keyframe of the window in place.
	Keep Verdict = iota
	// RemoveA marks the window's first keyframe as redundant.
	RemoveA
	// RemoveB marks the second keyframe.
	RemoveB
	// RemoveC marks the third keyframe.
	RemoveC
)

func (v Verdict) String() string {
	switch v {
	case RemoveA:
		return "removeA"
	case RemoveB:
		return "removeB"
	case RemoveC:
		return "removeC"
	default:
		return "keep"
	}
}

// Window is a run of consecutive keyframes. C is nil for a two-keyframe window.
// Reducers must not modify the keyframes.
type Window struct {
	A, B, C *keyframe.Keyframe
}

// Len returns 2 or 3.
func (w Window) Len() int {
	if w.C == nil {
		return 2
	}
	return 3
}

// Reducer judges whether one keyframe of a window is redundant.
// A Reducer may keep scratch state and is used by one run at a time.
type Reducer interface {
	Name() string
	Reduce(w Window) Verdict
}

// Factory builds one Reducer instance for a run.
type Factory func(s Settings) Reducer

type entry struct {
	name    string
	factory Factory
}

var (
	errDuplicateReducer = errors.New("optimize: duplicate reducer name")
	errBuiltinReducer   = errors.New("optimize: name is taken by a built-in reducer")
	errEmptyReducerName = errors.New("optimize: empty reducer name")
)

// checkReducerName rejects names that Settings.Enabled could not tell apart.
func checkReducerName(name string) error {
	if name == "" {
		return errEmptyReducerName
	}
	if slices.Contains(Builtins(), name) {
		return fmt.Errorf("%w: %s", errBuiltinReducer, name)
	}
	return nil
}

// Registry is an ordered set of named reducer factories.
type Registry struct {
	entries []entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a factory under name. Empty names and names already used
// in r or by a built-in reducer are rejected.
func (r *Registry) Register(name string, factory Factory) error {
	if err := checkReducerName(name); err != nil {
		return err
	}

	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilReducer, name)
	}

	if r.Lookup(name) != nil {
		return fmt.Errorf("%w: %s", errDuplicateReducer, name)
	}

	r.entries = append(r.entries, entry{name: name, factory: factory})

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	err := r.Register(name, factory)
	if err != nil {
		panic("optimize registry: " + err.Error())
	}
}

// Lookup returns the factory registered under name, or nil.
func (r *Registry) Lookup(name string) Factory {
	for _, e := range r.entries {
		if e.name == name {
			return e.factory
		}
	}
	return nil
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Func adapts a plain function to the Reducer interface.
type Func struct {
	ID string
	Fn func(w Window) Verdict
}

// Name implements Reducer.
func (f Func) Name() string { return f.ID }

// Reduce implements Reducer.
func (f Func) Reduce(w Window) Verdict { return f.Fn(w) }
