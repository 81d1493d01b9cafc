package huffpack

import (
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	type testRow struct {
		name     string
		input    []byte
		expect   map[byte]uint32
		distinct int
	}

	testData := [...]testRow{
		{
			name:     "Empty",
			input:    nil,
			expect:   map[byte]uint32{},
			distinct: 0,
		},
		{
			name:     "AAAB",
			input:    []byte("aaab"),
			expect:   map[byte]uint32{'a': 3, 'b': 1},
			distinct: 2,
		},
		{
			name:  "Mississippi",
			input: []byte("mississippi"),
			expect: map[byte]uint32{
				'm': 1,
				'i': 4,
				's': 4,
				'p': 2,
			},
			distinct: 4,
		},
		{
			name:     "SingleSymbol",
			input:    []byte("bbbbb"),
			expect:   map[byte]uint32{'b': 5},
			distinct: 1,
		},
	}

	for _, row := range testData {
		row := row
		t.Run(row.name, func(t *testing.T) {
			ft := CountFrequencies(row.input)
			for symbol := 0; symbol < NumSymbols; symbol++ {
				expect := row.expect[byte(symbol)]
				actual := ft[symbol]
				if expect != actual {
					t.Errorf("wrong count for %#04x: expect %d, actual %d", symbol, expect, actual)
				}
			}
			if expect, actual := row.distinct, ft.NumDistinct(); expect != actual {
				t.Errorf("wrong NumDistinct: expect %d, actual %d", expect, actual)
			}
		})
	}
}

func TestCountFrequencies_FullAlphabet(t *testing.T) {
	input := make([]byte, NumSymbols)
	for i := range input {
		input[i] = byte(i)
	}

	ft := CountFrequencies(input)
	if expect, actual := NumSymbols, ft.NumDistinct(); expect != actual {
		t.Fatalf("wrong NumDistinct: expect %d, actual %d", expect, actual)
	}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ft[symbol] != 1 {
			t.Errorf("wrong count for %#04x: expect 1, actual %d", symbol, ft[symbol])
		}
	}
}
