package annotation

import (
	"context"
	"strings"
	"testing"

	"github.com/rablab/interactome/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gaf = "!gaf-version: 2.2\n" +
	"!generated-by: GOC\n" +
	"UniProtKB\tP20339\tRAB5A\tenables\tGO:0003924\tPMID:1\tIDA\t\tF\tRab5a\t\tprotein\ttaxon:9606\t20200101\tUniProt\n" +
	"UniProtKB\tP20339\tRAB5A\tlocated_in\tGO:0005769\tPMID:2\tIDA\t\tC\tRab5a\t\tprotein\ttaxon:9606\t20200101\tUniProt\n" +
	"UniProtKB\tP20339\tRAB5A\tenables\tGO:0003924\tPMID:3\tIEA\t\tF\tRab5a\t\tprotein\ttaxon:9606\t20200101\tUniProt\n" +
	"\n" +
	"UniProtKB\tQ15075\tEEA1\tNOT|enables\tGO:0005515\tPMID:4\tIPI\t\tF\tEEA1\t\tprotein\ttaxon:9606\t20200101\tUniProt\n"

func TestReadGAF(t *testing.T) {
	anns, err := ReadGAF(strings.NewReader(gaf))
	require.NoError(t, err)
	require.Len(t, anns, 4)

	assert.Equal(t, Annotation{Symbol: "RAB5A", Qualifier: "enables", GOID: "GO:0003924", Aspect: "F"}, anns[0])
	assert.Equal(t, "NOT|enables", anns[3].Qualifier)
	assert.Equal(t, "EEA1", anns[3].Symbol)
}

func TestReadGAF_ShortLine(t *testing.T) {
	_, err := ReadGAF(strings.NewReader("UniProtKB\tP1\tX\n"))
	assert.ErrorContains(t, err, "gaf line 1")
}

func TestIndex(t *testing.T) {
	anns, err := ReadGAF(strings.NewReader(gaf))
	require.NoError(t, err)
	x := NewIndex(anns)

	assert.Equal(t, 2, x.Len())
	assert.True(t, x.Annotated("EEA1"))
	assert.False(t, x.Annotated("RABGEF1"))
	assert.Equal(t, []string{"GO:0003924", "GO:0005769"}, x.TermsOf("RAB5A"))

	assert.Equal(t,
		[]string{"GO:0003924", "GO:0005515", "GO:0005769"},
		x.Terms([]string{"RABGEF1", "EEA1", "RAB5A"}),
	)
	assert.Empty(t, x.Terms([]string{"RABGEF1"}))
}

func TestStats(t *testing.T) {
	x := NewIndex([]Annotation{
		{Symbol: "A", GOID: "GO:1"},
		{Symbol: "B", GOID: "GO:2"},
	})

	tests := []struct {
		name  string
		genes []string
		want  Stats
	}{
		{"empty", nil, Stats{}},
		{"all annotated", []string{"A", "B"}, Stats{Annotated: 2}},
		{"mixed", []string{"A", "C", "D"}, Stats{Annotated: 1, Unannotated: 2}},
		{"duplicates", []string{"A", "A"}, Stats{Annotated: 1, Unannotated: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x.Stats(tt.genes)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.genes), got.Total())
		})
	}
}

func TestNonFilteredProportion(t *testing.T) {
	assert.Equal(t, 0.0, NonFilteredProportion(nil, 0.5))
	assert.InDelta(t, 50.0, NonFilteredProportion([]float64{0.1, 0.5, 0.9, 0.2}, 0.5), 1e-9)
	assert.InDelta(t, 100.0, NonFilteredProportion([]float64{1, 1}, 1), 1e-9)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, blobstore.Put(ctx, store, "GOA/goa_human.gaf.gz", []byte(gaf)))

	x, err := Load(ctx, store, "GOA/goa_human.gaf.gz")
	require.NoError(t, err)
	assert.Equal(t, 2, x.Len())

	_, err = Load(ctx, store, "GOA/goa_fly.gaf.gz")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
