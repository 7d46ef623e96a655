package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSetRatioSubset(t *testing.T) {
	t.Parallel()

	// a term contained in the field's token set scores full marks
	assert.Equal(t, 100, TokenSetRatio("blue", "Blue Gloss Paint"))
	assert.Equal(t, 100, TokenSetRatio("paint", "blue gloss paint 5L"))
	assert.Equal(t, 100, TokenSetRatio("AKZ123", "akz123"))
}

func TestTokenSetRatioWordOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, TokenSetRatio("matte blue", "Blue Matte Emulsion"))
	assert.Equal(t, TokenSetRatio("a b", "b a"), TokenSetRatio("b a", "a b"))
}

func TestTokenSetRatioPunctuationAndCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, TokenSetRatio("gloss", "GLOSS, white (2.5L)"))
	assert.Equal(t, 100, TokenSetRatio("white gloss", "white-gloss"))
}

func TestTokenSetRatioDisjoint(t *testing.T) {
	t.Parallel()

	assert.Less(t, TokenSetRatio("matte", "blue gloss paint"), 50)
	assert.Less(t, TokenSetRatio("zzzz", "Crown Trade Emulsion"), 50)
}

func TestTokenSetRatioEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TokenSetRatio("", "anything"))
	assert.Equal(t, 0, TokenSetRatio("anything", ""))
	assert.Equal(t, 0, TokenSetRatio("", ""))
}

func TestDamerauLevenshtein(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, damerauLevenshtein("paint", "paint"))
	assert.Equal(t, 1, damerauLevenshtein("paint", "pains"))
	// adjacent transposition counts as one edit
	assert.Equal(t, 1, damerauLevenshtein("blue", "bleu"))
	assert.Equal(t, 5, damerauLevenshtein("", "crown"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "blue gloss 2 5l", normalize("  Blue/Gloss (2.5L) "))
	assert.Equal(t, "", normalize("--- ..."))
}
