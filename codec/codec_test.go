package codec

import (
	"testing"

	"github.com/rablab/interactome/aggregate"
	"github.com/rablab/interactome/internal/membership"
	"github.com/rablab/interactome/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strictTable(t *testing.T) *aggregate.Table {
	t.Helper()
	m, err := membership.Build([]model.Collection{
		model.NewCollection("A", "x", "y", "z"),
		model.NewCollection("B", "y", "z", "w"),
	})
	require.NoError(t, err)
	return aggregate.Strict(m)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	c, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, "go-json", c.Name())

	_, err = ByName("msgpack")
	assert.Error(t, err)
}

func TestEncodeTable(t *testing.T) {
	const want = `{"mode":"strict","datasets":["A","B"],"entries":[` +
		`{"members":["A"],"count":1},` +
		`{"members":["B"],"count":1},` +
		`{"members":["A","B"],"count":2}]}`

	for _, c := range []Codec{JSON{}, GoJSON{}, nil} {
		b, err := EncodeTable(c, strictTable(t))
		require.NoError(t, err)
		assert.JSONEq(t, want, string(b))
	}
}

func TestDecodeTable(t *testing.T) {
	tbl := strictTable(t)
	b, err := EncodeTable(GoJSON{}, tbl)
	require.NoError(t, err)

	r, err := DecodeTable(JSON{}, b)
	require.NoError(t, err)
	assert.Equal(t, "strict", r.Mode)

	counts, err := r.Counts()
	require.NoError(t, err)
	assert.Equal(t, tbl.Map(), counts)
}

func TestTableReport_Counts_Invalid(t *testing.T) {
	r := TableReport{
		Datasets: []string{"A", "B"},
		Entries:  []ReportEntry{{Members: []string{"C"}, Count: 1}},
	}
	_, err := r.Counts()
	assert.Error(t, err)

	r.Entries = []ReportEntry{
		{Members: []string{"A"}, Count: 1},
		{Members: []string{"A"}, Count: 2},
	}
	_, err = r.Counts()
	assert.ErrorContains(t, err, "duplicate")
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, `{"count":3}`, string(MustMarshal(nil, map[string]int{"count": 3})))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
