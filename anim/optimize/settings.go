package optimize

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInvalidPasses is returned for a negative pass count.
	ErrInvalidPasses = errors.New("optimize: passes must be >= 0")
	// ErrInvalidThreshold is returned for a negative or NaN threshold.
	ErrInvalidThreshold = errors.New("optimize: threshold must be >= 0")
	// ErrNilReducer is returned when a reducer factory is nil.
	ErrNilReducer = errors.New("optimize: nil reducer factory")
)

// DuplicateSettings configures the duplicate reducer.
type DuplicateSettings struct {
	Enabled bool
}

// SimilarPointSettings configures the similar-point reducer.
type SimilarPointSettings struct {
	Enabled                 bool
	DifferenceThreshold     float64
	TimeDifferenceThreshold float64
}

// SlopeSettings configures the slope-similarity reducer.
type SlopeSettings struct {
	Enabled                       bool
	DifferenceThreshold           float64
	TimeDifferenceThreshold       float64
	YInterceptDifferenceThreshold float64
}

// Settings configures one optimization run. Build it with [NewSettings] or
// derive it with [Settings.With]. The fields may be edited directly;
// [Optimize] and [Track] validate the value again before running.
type Settings struct {
	Active        bool
	Passes        int
	Duplicates    DuplicateSettings
	SimilarPoints SimilarPointSettings
	Slopes        SlopeSettings

	extra []entry
}

// Option mutates Settings during construction.
type Option func(*Settings)

// DefaultSettings returns the settings used when no option is given.
func DefaultSettings() Settings {
	return Settings{
		Active:     true,
		Passes:     5,
		Duplicates: DuplicateSettings{Enabled: true},
		SimilarPoints: SimilarPointSettings{
			Enabled:                 true,
			DifferenceThreshold:     0.001,
			TimeDifferenceThreshold: 0.01,
		},
		Slopes: SlopeSettings{
			Enabled:                       true,
			DifferenceThreshold:           0.001,
			TimeDifferenceThreshold:       0.01,
			YInterceptDifferenceThreshold: 0.01,
		},
	}
}

// NewSettings applies opts to the defaults and validates the result.
func NewSettings(opts ...Option) (Settings, error) {
	return DefaultSettings().With(opts...)
}

// With returns a validated copy of s with opts applied. s is unchanged.
func (s Settings) With(opts ...Option) (Settings, error) {
	s.extra = slices.Clip(s.extra)
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// MustSettings is like NewSettings but panics on error.
func MustSettings(opts ...Option) Settings {
	s, err := NewSettings(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks passes and thresholds. Caller-supplied reducers must have
// a factory and a name no other reducer uses.
func (s Settings) Validate() error {
	if s.Passes < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPasses, s.Passes)
	}
	thresholds := []struct {
		name  string
		value float64
	}{
		{"similar points difference", s.SimilarPoints.DifferenceThreshold},
		{"similar points time difference", s.SimilarPoints.TimeDifferenceThreshold},
		{"slopes difference", s.Slopes.DifferenceThreshold},
		{"slopes time difference", s.Slopes.TimeDifferenceThreshold},
		{"slopes y-intercept difference", s.Slopes.YInterceptDifferenceThreshold},
	}
	for _, th := range thresholds {
		if th.value < 0 || math.IsNaN(th.value) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidThreshold, th.name, th.value)
		}
	}
	seen := make(map[string]bool, len(s.extra))
	for _, e := range s.extra {
		if err := checkReducerName(e.name); err != nil {
			return err
		}
		if seen[e.name] {
			return fmt.Errorf("%w: %s", errDuplicateReducer, e.name)
		}
		seen[e.name] = true
		if e.factory == nil {
			return fmt.Errorf("%w: %q", ErrNilReducer, e.name)
		}
	}
	return nil
}

// Enabled reports whether the named built-in or caller-supplied reducer runs.
func (s Settings) Enabled(name string) bool {
	switch name {
	case NameDuplicate:
		return s.Duplicates.Enabled
	case NameSimilarPoint:
		return s.SimilarPoints.Enabled
	case NameSlopeSimilarity:
		return s.Slopes.Enabled
	}
	return slices.Contains(s.Extra(), name)
}

// Extra returns the names of the caller-supplied reducers in run order.
func (s Settings) Extra() []string {
	names := make([]string, len(s.extra))
	for i, e := range s.extra {
		names[i] = e.name
	}
	return names
}

// WithActive enables or disables optimization as a whole.
func WithActive(active bool) Option {
	return func(s *Settings) {
		s.Active = active
	}
}

// WithPasses sets the number of passes.
func WithPasses(passes int) Option {
	return func(s *Settings) {
		s.Passes = passes
	}
}

// WithDuplicates enables or disables the duplicate reducer.
func WithDuplicates(enabled bool) Option {
	return func(s *Settings) {
		s.Duplicates.Enabled = enabled
	}
}

// WithSimilarPoints enables or disables the similar-point reducer.
func WithSimilarPoints(enabled bool) Option {
	return func(s *Settings) {
		s.SimilarPoints.Enabled = enabled
	}
}

// WithSimilarPointThresholds sets the similar-point value and time tolerances.
func WithSimilarPointThresholds(difference, timeDifference float64) Option {
	return func(s *Settings) {
		s.SimilarPoints.DifferenceThreshold = difference
		s.SimilarPoints.TimeDifferenceThreshold = timeDifference
	}
}

// WithSlopes enables or disables the slope-similarity reducer.
func WithSlopes(enabled bool) Option {
	return func(s *Settings) {
		s.Slopes.Enabled = enabled
	}
}

// WithSlopeThresholds sets the slope-similarity tolerances.
func WithSlopeThresholds(difference, timeDifference, yInterceptDifference float64) Option {
	return func(s *Settings) {
		s.Slopes.DifferenceThreshold = difference
		s.Slopes.TimeDifferenceThreshold = timeDifference
		s.Slopes.YInterceptDifferenceThreshold = yInterceptDifference
	}
}

// Only enables exactly the named built-in reducers. Caller-supplied
// reducers are unaffected.
func Only(names ...string) Option {
	return func(s *Settings) {
		s.Duplicates.Enabled = slices.Contains(names, NameDuplicate)
		s.SimilarPoints.Enabled = slices.Contains(names, NameSimilarPoint)
		s.Slopes.Enabled = slices.Contains(names, NameSlopeSimilarity)
	}
}

// WithReducer appends a caller-supplied reducer. It runs after the built-in
// reducers, in registration order.
func WithReducer(name string, factory Factory) Option {
	return func(s *Settings) {
		s.extra = append(slices.Clip(s.extra), entry{name: name, factory: factory})
	}
}

// WithRegistry appends every reducer of r in registration order.
func WithRegistry(r *Registry) Option {
	return func(s *Settings) {
		if r == nil {
			return
		}
		s.extra = append(slices.Clip(s.extra), r.entries...)
	}
}

// reducers builds fresh reducer instances for one run.
func (s Settings) reducers() []Reducer {
	var out []Reducer
	if s.Duplicates.Enabled {
		out = append(out, NewDuplicate())
	}
	if s.SimilarPoints.Enabled {
		out = append(out, NewSimilarPoint(s.SimilarPoints))
	}
	if s.Slopes.Enabled {
		out = append(out, NewSlopeSimilarity(s.Slopes))
	}
	for _, e := range s.extra {
		out = append(out, e.factory(s))
	}
	return out
}
