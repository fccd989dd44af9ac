package aggregate

import (
	"slices"
	"testing"

	"github.com/rablab/interactome/internal/membership"
	"github.com/rablab/interactome/model"
	"github.com/rablab/interactome/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, cols ...model.Collection) *membership.Matrix {
	t.Helper()
	m, err := membership.Build(cols)
	require.NoError(t, err)
	return m
}

func twoSets(t *testing.T) *membership.Matrix {
	return build(t,
		model.NewCollection("A", "x", "y", "z"),
		model.NewCollection("B", "y", "z", "w"),
	)
}

// A={1,2,3,4} B={3,4,5} C={4,5,6}
func threeSets(t *testing.T) *membership.Matrix {
	return build(t,
		model.NewCollection("A", "1", "2", "3", "4"),
		model.NewCollection("B", "3", "4", "5"),
		model.NewCollection("C", "4", "5", "6"),
	)
}

func TestStrict_TwoSets(t *testing.T) {
	tbl := Strict(twoSets(t))

	assert.Equal(t, model.Strict, tbl.Mode())
	assert.Equal(t, int64(1), tbl.Get(0b01))
	assert.Equal(t, int64(1), tbl.Get(0b10))
	assert.Equal(t, int64(2), tbl.Get(0b11))
	assert.Equal(t, int64(4), tbl.Sum())

	n, err := tbl.Lookup("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStrict_AbsentIsZero(t *testing.T) {
	tbl := Strict(threeSets(t))

	assert.Equal(t, map[model.Pattern]int64{
		0b001: 2,
		0b011: 1,
		0b111: 1,
		0b110: 1,
		0b100: 1,
	}, tbl.Map())

	assert.False(t, tbl.Has(0b010))
	assert.Equal(t, int64(0), tbl.Get(0b010))
	assert.Equal(t, int64(0), tbl.Get(0b101))
	assert.Equal(t, 5, tbl.Len())
}

func TestUncorrected_TwoSets(t *testing.T) {
	tbl := Uncorrected(twoSets(t))

	assert.Equal(t, map[model.Pattern]int64{
		0b01: 3,
		0b10: 3,
		0b11: 2,
	}, tbl.Map())
}

func TestInclusive_TwoSets(t *testing.T) {
	tbl := Inclusive(twoSets(t))

	assert.Equal(t, model.Inclusive, tbl.Mode())
	assert.Equal(t, map[model.Pattern]int64{
		0b01: 1,
		0b10: 1,
		0b11: 2,
	}, tbl.Map())
}

func TestInclusive_ThreeSets(t *testing.T) {
	m := threeSets(t)

	raw := Uncorrected(m)
	assert.Equal(t, map[model.Pattern]int64{
		0b001: 4, 0b010: 3, 0b100: 3,
		0b011: 2, 0b101: 1, 0b110: 2,
		0b111: 1,
	}, raw.Map())

	tbl := Inclusive(m)
	// A: 2*4 - (4+2+1+1) = 0
	assert.Equal(t, int64(0), tbl.Get(0b001))
	// B: 2*3 - (3+2+2+1) = -2
	assert.Equal(t, int64(-2), tbl.Get(0b010))
	// C: 2*3 - (3+1+2+1) = -1
	assert.Equal(t, int64(-1), tbl.Get(0b100))

	for _, p := range []model.Pattern{0b011, 0b101, 0b110, 0b111} {
		assert.Equal(t, raw.Get(p), tbl.Get(p), p.String())
	}

	assert.Equal(t, []model.Pattern{0b010, 0b100}, NegativeSingletons(tbl))
}

func TestInclusive_HeavyOverlapGoesNegative(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	tbl := Inclusive(build(t,
		model.NewCollection("A", ids...),
		model.NewCollection("B", ids...),
		model.NewCollection("C", ids...),
	))

	for i := 0; i < 3; i++ {
		// 2*4 - 4*4
		assert.Equal(t, int64(-8), tbl.Get(model.Singleton(i)))
	}
	assert.Equal(t, int64(4), tbl.Get(0b111))
}

func TestInclusive_SingleCollection(t *testing.T) {
	tbl := Inclusive(build(t, model.NewCollection("A", "x", "y")))

	// 2*2 - 2
	assert.Equal(t, map[model.Pattern]int64{0b1: 2}, tbl.Map())
}

func TestInclusive_ZeroPatternsPresent(t *testing.T) {
	tbl := Uncorrected(build(t,
		model.NewCollection("A", "x"),
		model.NewCollection("B", "y"),
		model.NewCollection("C", "z"),
	))

	assert.Equal(t, 7, tbl.Len())
	assert.True(t, tbl.Has(0b111))
	assert.Equal(t, int64(0), tbl.Get(0b111))
}

func TestCorrectSingletons_ReadsPristineTable(t *testing.T) {
	raw := Uncorrected(threeSets(t))
	before := raw.Map()

	once := CorrectSingletons(raw)

	assert.Equal(t, before, raw.Map(), "input must not be modified")

	for i := 0; i < raw.K(); i++ {
		p0 := model.Singleton(i)
		var agg int64
		for _, p := range model.All(raw.K()) {
			if p.Has(i) {
				agg += before[p]
			}
		}
		assert.Equal(t, 2*before[p0]-agg, once.Get(p0))
	}

	// Correcting a corrected table uses different inputs, so it is not a
	// fixed point.
	twice := CorrectSingletons(once)
	assert.NotEqual(t, once.Map(), twice.Map())
}

func TestTable_Patterns(t *testing.T) {
	tbl := Uncorrected(threeSets(t))

	assert.Equal(t, []model.Pattern{
		0b001, 0b010, 0b100,
		0b011, 0b101, 0b110,
		0b111,
	}, tbl.Patterns())

	entries := tbl.Entries()
	require.Len(t, entries, 7)
	assert.Equal(t, Entry{Pattern: 0b001, Count: 4}, entries[0])
}

func TestTable_Filter(t *testing.T) {
	tbl := Inclusive(threeSets(t))

	f := tbl.Filter(2)
	assert.Equal(t, 4, f.Len())
	assert.False(t, f.Has(0b001))
	assert.Equal(t, tbl.Names(), f.Names())
	assert.Equal(t, 7, tbl.Len())
}

func TestTable_LookupUnknown(t *testing.T) {
	tbl := Strict(twoSets(t))
	_, err := tbl.Lookup("Z")
	assert.Error(t, err)
}

func TestProperties_Random(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for trial := 0; trial < 25; trial++ {
		k := 1 + rng.Intn(6)
		cols := rng.Collections(k, 150, 0.35)
		m := build(t, cols...)

		strict := Strict(m)
		raw := Uncorrected(m)

		// partition completeness
		assert.Equal(t, int64(m.Len()), strict.Sum())

		// exhaustiveness
		assert.Equal(t, 1<<k-1, raw.Len())
		assert.Equal(t, 1<<k-1, Inclusive(m).Len())

		// singleton identity before correction
		for i, c := range cols {
			assert.Equal(t, int64(c.Size()), raw.Get(model.Singleton(i)))
		}

		full := model.Full(k)
		assert.Equal(t, strict.Get(full), raw.Get(full))
		for _, p := range model.All(k) {
			assert.GreaterOrEqual(t, raw.Get(p), strict.Get(p))
		}

		// bitmap intersections agree with the vector scan
		assert.Equal(t, uncorrectedByVector(m).Map(), raw.Map())
	}
}

func TestProperties_OrderSensitivity(t *testing.T) {
	rng := testutil.NewRNG(99)

	for trial := 0; trial < 10; trial++ {
		cols := rng.Collections(4, 80, 0.4)
		perm := rng.Perm(len(cols))
		shuffled := testutil.Permute(cols, perm)

		a, b := build(t, cols...), build(t, shuffled...)

		assert.Equal(t, values(Strict(a)), values(Strict(b)))
		assert.Equal(t, values(Inclusive(a)), values(Inclusive(b)))

		// the same named combination keeps its count
		sa, sb := Inclusive(a), Inclusive(b)
		for _, p := range model.All(4) {
			names := p.Names(sa.Names())
			got, err := sb.Lookup(names...)
			require.NoError(t, err)
			assert.Equal(t, sa.Get(p), got)
		}
	}
}

func values(t *Table) []int64 {
	var out []int64
	for _, e := range t.Entries() {
		out = append(out, e.Count)
	}
	slices.Sort(out)
	return out
}
