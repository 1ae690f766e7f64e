package idrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/puzzlith/idrange"
)

// TestParse_Valid verifies the happy path of the token grammar.
func TestParse_Valid(t *testing.T) {
	r, err := idrange.Parse("11-22")
	assert.NoError(t, err, "well-formed token should parse")
	assert.Equal(t, idrange.Range{First: 11, Last: 22}, r)

	r, err = idrange.Parse("95-115")
	assert.NoError(t, err)
	assert.Equal(t, idrange.Range{First: 95, Last: 115}, r)
}

// TestParse_Malformed walks every rejection class: bad grammar,
// reversed or single-ID spans, overflow, untrimmed whitespace.
func TestParse_Malformed(t *testing.T) {
	tokens := []string{
		"",
		"11",
		"a-b",
		"11-22-33",
		"22-11",
		"11-11",
		" 11-22",
		"11-22\n",
		"-11-22",
		"99999999999999999999-99999999999999999999999",
	}
	for _, token := range tokens {
		_, err := idrange.Parse(token)
		assert.ErrorIs(t, err, idrange.ErrMalformedRange, "token %q must be rejected", token)
	}
}

// TestParseList verifies batch parsing: per-token trimming, silent
// blank skipping, and counted malformed skipping.
func TestParseList(t *testing.T) {
	ranges, skipped := idrange.ParseList("11-22, nope,95-115\n", ",")
	assert.Equal(t, 1, skipped, "only the garbage token counts as skipped")
	assert.Equal(t, []idrange.Range{
		{First: 11, Last: 22},
		{First: 95, Last: 115},
	}, ranges, "whitespace around surviving tokens is trimmed")

	ranges, skipped = idrange.ParseList("11-22,,", ",")
	assert.Zero(t, skipped, "blank tokens are not counted")
	assert.Len(t, ranges, 1)

	ranges, skipped = idrange.ParseList("", ",")
	assert.Zero(t, skipped)
	assert.Empty(t, ranges)
}

// TestInvalid_Halves pins the even-split rule on hand-checked IDs.
func TestInvalid_Halves(t *testing.T) {
	cases := []struct {
		id   uint64
		want bool
	}{
		{7, false},
		{10, false},
		{11, true},
		{22, true},
		{99, true},
		{111, false}, // odd digit count never matches
		{1212, true},
		{1234, false},
		{121212, false}, // 121 vs 212
		{100100, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, idrange.Invalid(tc.id, idrange.Halves), "id %d", tc.id)
	}
}

// TestInvalid_Repeats pins the repeated-chunk rule, including chunks
// with significant leading zeros.
func TestInvalid_Repeats(t *testing.T) {
	cases := []struct {
		id   uint64
		want bool
	}{
		{7, false},
		{11, true},
		{111, true},
		{999, true},
		{1000, false},
		{1010, true},
		{1211, false},
		{1212, true},
		{1234, false},
		{100100, true}, // chunk "100" twice, middle zeros intact
		{121212, true},
		{123123, true},
		{12341234, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, idrange.Invalid(tc.id, idrange.Repeats), "id %d", tc.id)
	}
}

// TestRepeatsContainsHalves checks the grading property on a dense
// sample: every Halves match is also a Repeats match.
func TestRepeatsContainsHalves(t *testing.T) {
	for id := uint64(1); id <= 3000; id++ {
		if idrange.Invalid(id, idrange.Halves) {
			assert.True(t, idrange.Invalid(id, idrange.Repeats),
				"id %d matches Halves but not Repeats", id)
		}
	}
}

// TestIDs verifies materialization of a small span.
func TestIDs(t *testing.T) {
	r := idrange.Range{First: 11, Last: 14}
	assert.Equal(t, []uint64{11, 12, 13, 14}, r.IDs())
}

// TestInvalidIDs verifies enumeration order and content.
func TestInvalidIDs(t *testing.T) {
	r := idrange.Range{First: 95, Last: 115}
	assert.Equal(t, []uint64{99}, r.InvalidIDs(idrange.Halves))
	assert.Equal(t, []uint64{99, 111}, r.InvalidIDs(idrange.Repeats))
}

// TestSumInvalid verifies the streaming sums on hand-checked spans.
func TestSumInvalid(t *testing.T) {
	cases := []struct {
		name string
		r    idrange.Range
		rule idrange.Rule
		want uint64
	}{
		{"HalvesPair", idrange.Range{First: 11, Last: 22}, idrange.Halves, 33},
		{"HalvesAcrossWidths", idrange.Range{First: 95, Last: 115}, idrange.Halves, 99},
		{"RepeatsAcrossWidths", idrange.Range{First: 95, Last: 115}, idrange.Repeats, 210},
		{"HalvesFourDigit", idrange.Range{First: 998, Last: 1012}, idrange.Halves, 1010},
		{"RepeatsFourDigit", idrange.Range{First: 998, Last: 1012}, idrange.Repeats, 2009},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.SumInvalid(tc.rule))
		})
	}
}

// TestMalformedRangeMethods confirms that a structurally invalid span
// yields nothing rather than an endless walk.
func TestMalformedRangeMethods(t *testing.T) {
	for _, r := range []idrange.Range{{First: 22, Last: 11}, {First: 5, Last: 5}} {
		assert.Nil(t, r.IDs(), "IDs of %+v", r)
		assert.Nil(t, r.InvalidIDs(idrange.Repeats), "InvalidIDs of %+v", r)
		assert.Zero(t, r.SumInvalid(idrange.Halves), "SumInvalid of %+v", r)
	}
}

// TestRule_String pins the log names.
func TestRule_String(t *testing.T) {
	assert.Equal(t, "halves", idrange.Halves.String())
	assert.Equal(t, "repeats", idrange.Repeats.String())
}
