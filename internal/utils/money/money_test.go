package money_test

import (
	"testing"

	"github.com/electrotrade/eterp_backend/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse_SafeZero(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil input", input: nil, want: "0"},
		{name: "empty string", input: "", want: "0"},
		{name: "whitespace string", input: "   ", want: "0"},
		{name: "malformed string", input: "12.3.4", want: "0"},
		{name: "nil string pointer", input: (*string)(nil), want: "0"},
		{name: "valid string", input: "123.456", want: "123.456"},
		{name: "negative string", input: "-5.25", want: "-5.25"},
		{name: "int input", input: 42, want: "42"},
		{name: "int64 input", input: int64(-7), want: "-7"},
		{name: "decimal passthrough", input: decimal.RequireFromString("9.999"), want: "9.999"},
		{name: "unsupported type", input: struct{}{}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.Parse(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"Parse(%v) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestSafeDiv(t *testing.T) {
	ten := decimal.NewFromInt(10)
	four := decimal.NewFromInt(4)

	assert.True(t, money.SafeDiv(ten, decimal.Zero).IsZero(), "division by zero must yield zero")
	assert.True(t, money.SafeDiv(decimal.Zero, four).IsZero())
	assert.True(t, money.SafeDiv(ten, four).Equal(decimal.RequireFromString("2.5")))
}

func TestRoundTo_HalfUp(t *testing.T) {
	tests := []struct {
		input string
		scale int32
		want  string
	}{
		{"1.2345", 3, "1.235"},
		{"1.2344", 3, "1.234"},
		{"1.0005", 3, "1.001"},
		{"2.5", 0, "3"},
		{"3.5", 0, "4"}, // always up on halves, never banker's rounding
		{"-2.5", 0, "-2"},
		{"0.0004", 3, "0"},
		{"7.029", 3, "7.029"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := money.RoundTo(decimal.RequireFromString(tt.input), tt.scale)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"RoundTo(%s, %d) = %s, want %s", tt.input, tt.scale, got, tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.235", money.Format(decimal.RequireFromString("1.2345"), money.KWDScale))
	assert.Equal(t, "1.23", money.Format(decimal.RequireFromString("1.2345"), money.ForeignScale))
	assert.Equal(t, "0.000", money.Format(decimal.Zero, money.KWDScale))
	assert.Equal(t, "-5.250", money.Format(decimal.RequireFromString("-5.25"), money.KWDScale))
}

func TestLineTotal_SumsOfRoundedLines(t *testing.T) {
	// Each line rounds independently; the order total is the sum of the
	// rounded lines, so it matches what the statement displays.
	line1 := money.LineTotal(decimal.NewFromInt(3), decimal.RequireFromString("1.005"), money.KWDScale)
	line2 := money.LineTotal(decimal.NewFromInt(2), decimal.RequireFromString("2.007"), money.KWDScale)

	assert.True(t, line1.Equal(decimal.RequireFromString("3.015")))
	assert.True(t, line2.Equal(decimal.RequireFromString("4.014")))
	assert.True(t, line1.Add(line2).Equal(decimal.RequireFromString("7.029")))
}

func TestLineTotal_RoundsAtScale(t *testing.T) {
	// 7 x 0.3333 = 2.3331, rounded at three places.
	got := money.LineTotal(decimal.NewFromInt(7), decimal.RequireFromString("0.3333"), money.KWDScale)
	assert.True(t, got.Equal(decimal.RequireFromString("2.333")))
}
