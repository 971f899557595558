package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"uint32", "unit32", 2},
		{"uint32", "uint23", 2},
		{"Seq", "seq", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("word", "word"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("data", "date"), 1e-9)
}

func TestNormalize(t *testing.T) {
	for in, want := range map[string]string{
		"SeqNo":     "seqno",
		"seq_no":    "seqno",
		"Seq-No":    "seqno",
		"wire.Data": "wiredata",
		"":          "",
	} {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestRank(t *testing.T) {
	known := []string{"Data", "Label", "Word", "Telemetry"}

	list := Rank("Date", known)
	if assert.NotEmpty(t, list) {
		assert.Equal(t, "Data", list[0].Name)
	}

	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Score, list[i].Score)
	}

	assert.Empty(t, Rank("Zzz", known))
}

func TestClosest(t *testing.T) {
	kinds := []string{"uint8", "uint16", "uint32", "uint64", "float32", "bool"}

	got, ok := Closest("unit32", kinds)
	assert.True(t, ok)
	assert.Equal(t, "uint32", got)

	got, ok = Closest("flaot32", kinds)
	assert.True(t, ok)
	assert.Equal(t, "float32", got)

	_, ok = Closest("complex128", kinds)
	assert.False(t, ok)

	// an exact match is not a suggestion
	_, ok = Closest("bool", []string{"bool"})
	assert.False(t, ok)
}

func TestHint(t *testing.T) {
	assert.Equal(t, "did you mean decode?", Hint("decod", []string{"decode", "encode", "size"}))
	assert.Empty(t, Hint("xyz", []string{"decode"}))
}
