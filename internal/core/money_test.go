package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		valid bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1234.5", 123450, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", -100, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"N/A", 0, false},
		{".", 0, false},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if got.Valid != tc.valid || got.Cents != tc.cents {
			t.Fatalf("%q expected {%d %v}, got {%d %v}", tc.in, tc.cents, tc.valid, got.Cents, got.Valid)
		}
	}
}

func TestMoneyBRL(t *testing.T) {
	cases := []struct {
		m    Money
		want string
	}{
		{Money{Cents: 123450, Valid: true}, "R$ 1.234,50"},
		{Money{Cents: 50, Valid: true}, "R$ 0,50"},
		{Money{Cents: 100000000, Valid: true}, "R$ 1.000.000,00"},
		{Money{Cents: -123450, Valid: true}, "-R$ 1.234,50"},
		{Money{}, ""},
	}
	for _, tc := range cases {
		if got := tc.m.BRL(); got != tc.want {
			t.Fatalf("%+v expected %q, got %q", tc.m, tc.want, got)
		}
	}
}

func TestMoneyFromFloat(t *testing.T) {
	cases := []struct {
		in    float64
		cents int64
	}{
		{1234.5, 123450},
		{0.005, 1},
		{-1.25, -125},
		{0, 0},
	}
	for _, tc := range cases {
		got := MoneyFromFloat(tc.in)
		if !got.Valid || got.Cents != tc.cents {
			t.Fatalf("%v expected %d cents, got %+v", tc.in, tc.cents, got)
		}
	}
}
