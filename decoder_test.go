package huffpack

import (
	"testing"
)

func TestDecoder_Step(t *testing.T) {
	// Codes for "abcd" are a=00, b=01, c=10, d=11.
	var d Decoder
	d.Init(mustBuildTree(t, []byte("abcd")))

	type testRow struct {
		bit      bool
		expectOK bool
		expect   byte
	}

	testData := [...]testRow{
		{bit: false, expectOK: false},
		{bit: false, expectOK: true, expect: 'a'},
		{bit: false, expectOK: false},
		{bit: true, expectOK: true, expect: 'b'},
		{bit: true, expectOK: false},
		{bit: false, expectOK: true, expect: 'c'},
		{bit: true, expectOK: false},
		{bit: true, expectOK: true, expect: 'd'},
	}

	for i, row := range testData {
		symbol, ok := d.Step(row.bit)
		if ok != row.expectOK {
			t.Fatalf("step %d: expected ok=%v, got ok=%v", i, row.expectOK, ok)
		}
		if ok && symbol != row.expect {
			t.Errorf("step %d: expected symbol %q, got %q", i, row.expect, symbol)
		}
	}
}

func TestDecoder_Step_OneBitCodes(t *testing.T) {
	// Codes for "aaab" are b=0 (lighter, merged first) and a=1.
	var d Decoder
	d.Init(mustBuildTree(t, []byte("aaab")))

	if symbol, ok := d.Step(false); !ok || symbol != 'b' {
		t.Errorf("Step(false): expected ('b', true), got (%q, %v)", symbol, ok)
	}
	if symbol, ok := d.Step(true); !ok || symbol != 'a' {
		t.Errorf("Step(true): expected ('a', true), got (%q, %v)", symbol, ok)
	}
}

func TestDecoder_Step_RootIsLeaf(t *testing.T) {
	// A single-symbol tree emits its symbol on every bit, whatever the
	// bit's value.
	var d Decoder
	d.Init(mustBuildTree(t, []byte("bbbbb")))

	for i, bit := range []bool{false, true, true, false, false} {
		symbol, ok := d.Step(bit)
		if !ok {
			t.Fatalf("step %d: expected ok, got !ok", i)
		}
		if symbol != 'b' {
			t.Errorf("step %d: expected symbol 'b', got %q", i, symbol)
		}
	}
}

func TestDecoder_Step_ResetsAfterLeaf(t *testing.T) {
	var d Decoder
	d.Init(mustBuildTree(t, []byte("abcd")))

	// Walk to 'd' (11), then confirm the next walk starts from the root
	// rather than continuing from the leaf.
	d.Step(true)
	if symbol, ok := d.Step(true); !ok || symbol != 'd' {
		t.Fatalf("expected ('d', true), got (%q, %v)", symbol, ok)
	}
	d.Step(false)
	if symbol, ok := d.Step(false); !ok || symbol != 'a' {
		t.Errorf("expected ('a', true), got (%q, %v)", symbol, ok)
	}
}
