package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreqTable(t *testing.T) {
	var table FreqTable
	table.Init("aaabb")

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, uint64(3), table.Weight('a'))
	assert.Equal(t, uint64(2), table.Weight('b'))
	assert.Equal(t, uint64(0), table.Weight('c'))
	assert.Equal(t, uint64(5), table.Total())
}

func TestFreqTable_Empty(t *testing.T) {
	var table FreqTable
	table.Init("")

	assert.Equal(t, 0, table.Len())
	assert.Equal(t, uint64(0), table.Total())
}

func TestFreqTable_Unicode(t *testing.T) {
	var table FreqTable
	table.Init("héhé日")

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, uint64(2), table.Weight('h'))
	assert.Equal(t, uint64(2), table.Weight('é'))
	assert.Equal(t, uint64(1), table.Weight('日'))
	assert.Equal(t, uint64(5), table.Total())
}

func TestFreqTable_Each(t *testing.T) {
	var table FreqTable
	table.Init("mississippi")

	seen := make(map[rune]uint64)
	table.Each(func(ch rune, weight uint64) {
		seen[ch] = weight
	})

	expect := map[rune]uint64{'m': 1, 'i': 4, 's': 4, 'p': 2}
	assert.Equal(t, expect, seen)
}
