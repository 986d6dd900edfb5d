package optimize

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/cwbudde/algo-anim/anim/keyframe"
	"github.com/cwbudde/algo-anim/anim/sample"
	"github.com/cwbudde/algo-anim/internal/testutil"
)

func onePass(t *testing.T, names ...string) Settings {
	t.Helper()
	s, err := NewSettings(WithPasses(1), Only(names...))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDuplicateCollapse(t *testing.T) {
	raw := []any{
		[]any{1.0, 1.0, 1.0, 0.0},
		[]any{1.0, 1.0, 1.0, 0.5},
		[]any{1.0, 1.0, 1.0, 1.0},
	}
	got, err := Optimize(raw, onePass(t, NameDuplicate))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		[]any{1.0, 1.0, 1.0, 0.0},
		[]any{1.0, 1.0, 1.0, 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Optimize() = %v, want %v", got, want)
	}
	if len(raw) != 3 {
		t.Fatal("Optimize modified its input")
	}
}

func TestSlopeCollapse(t *testing.T) {
	raw := []any{
		[]any{0.0, 0.0},
		[]any{5.0, 0.5},
		[]any{10.0, 1.0},
	}
	got, err := Optimize(raw, onePass(t, NameSlopeSimilarity))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		[]any{0.0, 0.0},
		[]any{10.0, 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Optimize() = %v, want %v", got, want)
	}

	v, err := sample.AtRaw(sample.KindGeneric, got, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, v, []float64{5}, 1e-9)
}

func TestFlagGating(t *testing.T) {
	s := onePass(t, NameSimilarPoint)
	gated := []any{
		[]any{0.0, 0.0},
		[]any{0.0005, 0.005, "easeInQuad"},
		[]any{0.0006, 0.01},
	}
	got, err := Optimize(gated, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("keyframes with differing easing were merged: %v", got)
	}

	plain := []any{
		[]any{0.0, 0.0},
		[]any{0.0005, 0.005},
		[]any{0.0006, 0.01},
	}
	got, err = Optimize(plain, s)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{[]any{0.0, 0.0}, []any{0.0006, 0.01}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Optimize() = %v, want %v", got, want)
	}
}

func TestThresholdEdges(t *testing.T) {
	s, err := NewSettings(
		WithPasses(1),
		Only(NameSimilarPoint),
		WithSimilarPointThresholds(0.5, 0.25),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Value delta equal to the threshold is not similar.
	edgeValue := []any{[]any{0.0, 0.0}, []any{0.5, 0.25}, []any{0.5, 0.5}}
	got, err := Optimize(edgeValue, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("value delta == threshold was treated as similar: %v", got)
	}

	// Time delta equal to the threshold is similar.
	edgeTime := []any{[]any{0.0, 0.0}, []any{0.25, 0.25}, []any{0.25, 0.5}}
	got, err = Optimize(edgeTime, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("time delta == threshold was not treated as similar: %v", got)
	}
}

func TestInactiveOnlyNormalizes(t *testing.T) {
	s := MustSettings(WithActive(false))

	long := []any{
		[]any{1.0, 0.0},
		[]any{1.0, 0.25},
		[]any{1.0, 0.5},
		[]any{1.0, 1.0},
	}
	got, err := Optimize(long, s)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, long) {
		t.Fatalf("Optimize() = %v, want input unchanged", got)
	}

	single := []any{[]any{3.0, 4.0, 0.0}}
	got, err = Optimize(single, s)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []any{3.0, 4.0}) {
		t.Fatalf("Optimize() = %v, want simplified [3 4]", got)
	}
}

func TestShortTracksAreNeverReduced(t *testing.T) {
	raw := []any{[]any{1.0, 0.0}, []any{1.0, 1.0}}
	got, err := Optimize(raw, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, raw) {
		t.Fatalf("Optimize() = %v, want unchanged", got)
	}

	simple := []any{1.0, 2.0}
	got, err = Optimize(simple, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, simple) {
		t.Fatalf("Optimize() = %v, want unchanged", got)
	}

	got, err = Optimize([]any{}, DefaultSettings())
	if err != nil || len(got) != 0 {
		t.Fatalf("Optimize(empty) = %v, %v", got, err)
	}
}

func TestOptimizeSortsByTime(t *testing.T) {
	raw := []any{
		[]any{10.0, 1.0},
		[]any{0.0, 0.0},
		[]any{3.0, 0.5},
	}
	got, err := Optimize(raw, MustSettings(WithPasses(1), Only()))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		[]any{0.0, 0.0},
		[]any{3.0, 0.5},
		[]any{10.0, 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Optimize() = %v, want %v", got, want)
	}
}

func TestCollapseToSimple(t *testing.T) {
	raw := []any{
		[]any{2.0, 0.0},
		[]any{2.0, 0.5},
		[]any{2.0, 1.0},
	}
	// Extra reducer that also drops a trailing duplicate endpoint.
	dropTail := func(Settings) Reducer {
		return Func{ID: "dropTail", Fn: func(w Window) Verdict {
			if w.C.Values[0] == w.A.Values[0] {
				return RemoveC
			}
			return Keep
		}}
	}
	got, err := Optimize(raw, MustSettings(WithPasses(1), Only(NameDuplicate), WithReducer("dropTail", dropTail)))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []any{2.0}) {
		t.Fatalf("Optimize() = %v, want simple [2]", got)
	}
}

func TestLinearRampCollapses(t *testing.T) {
	tr := testutil.Ramp(17, []float64{0, 5, -3}, []float64{8, 5, 3})
	got, err := Track(tr, MustSettings(Only(NameSlopeSimilarity)))
	if err != nil {
		t.Fatal(err)
	}
	want := keyframe.Track{tr[0], tr[len(tr)-1]}
	testutil.RequireTrackEqual(t, got, want, 0)
}

func TestMultiplePassesConverge(t *testing.T) {
	tr := testutil.Constant(9, 1, 2)
	one, err := Track(tr, MustSettings(WithPasses(1), Only(NameDuplicate)))
	if err != nil {
		t.Fatal(err)
	}
	many, err := Track(tr, MustSettings(WithPasses(5), Only(NameDuplicate)))
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 2 || len(many) != 2 {
		t.Fatalf("len(one) = %d, len(many) = %d, want 2", len(one), len(many))
	}

	zero, err := Track(tr, MustSettings(WithPasses(0)))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireTrackEqual(t, zero, tr, 0)
}

func TestDeterminism(t *testing.T) {
	tr := testutil.Noise(7, 200, 3, 0.002)
	s := MustSettings(WithSimilarPointThresholds(0.003, 0.02))
	a, err := Optimize(tr.Encode(), s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Optimize(tr.Encode(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical input and settings produced different output")
	}
	if len(a) >= len(tr) {
		t.Fatalf("expected noisy track to shrink, got %d of %d", len(a), len(tr))
	}
}

func TestConcurrentRunsShareSettings(t *testing.T) {
	s := MustSettings()
	want, err := Track(testutil.Sine(64, 1), s)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]keyframe.Track, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Track(testutil.Sine(64, 1), s)
		}()
	}
	wg.Wait()
	for i := range results {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		testutil.RequireTrackEqual(t, results[i], want, 0)
	}
}

func TestOptimizeDoesNotMutateTrack(t *testing.T) {
	tr := testutil.Constant(5, 4)
	tr[2].Time, tr[3].Time = tr[3].Time, tr[2].Time
	snapshot := tr.Clone()
	if _, err := Track(tr, DefaultSettings()); err != nil {
		t.Fatal(err)
	}
	testutil.RequireTrackEqual(t, tr, snapshot, 0)
}

func TestOptimizeErrors(t *testing.T) {
	s := DefaultSettings()
	mismatch := []any{[]any{0.0, 0.0, 0.0}, []any{1.0, 0.5}, []any{2.0, 1.0}}
	if _, err := Optimize(mismatch, s); !errors.Is(err, keyframe.ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
	if _, err := Optimize([]any{[]any{"easeInQuad"}}, s); !errors.Is(err, keyframe.ErrNoTime) {
		t.Fatalf("error = %v, want ErrNoTime", err)
	}
	bad := s
	bad.Passes = -1
	if _, err := Optimize([]any{1.0}, bad); !errors.Is(err, ErrInvalidPasses) {
		t.Fatalf("error = %v, want ErrInvalidPasses", err)
	}
	if _, err := Track(nil, bad); !errors.Is(err, ErrInvalidPasses) {
		t.Fatalf("error = %v, want ErrInvalidPasses", err)
	}
	edited := s
	edited.Slopes.YInterceptDifferenceThreshold = -0.5
	if _, err := Optimize(testutil.Ramp(4, []float64{0}, []float64{3}).Encode(), edited); !errors.Is(err, ErrInvalidThreshold) {
		t.Fatalf("error = %v, want ErrInvalidThreshold", err)
	}
}

func TestFreshReducersPerRun(t *testing.T) {
	var mu sync.Mutex
	built := 0
	factory := func(Settings) Reducer {
		mu.Lock()
		built++
		mu.Unlock()
		return Func{ID: "noop", Fn: func(Window) Verdict { return Keep }}
	}
	s := MustSettings(WithReducer("noop", factory))
	for range 3 {
		if _, err := Track(testutil.Sine(8, 1), s); err != nil {
			t.Fatal(err)
		}
	}
	if built != 3 {
		t.Fatalf("factory called %d times, want 3", built)
	}
}
