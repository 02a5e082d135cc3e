package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{3, 300},
		{10.5, 1050},
		{49.25, 4925},
		{10.999, 1099}, // fractional cents are truncated, not rounded
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MinorUnits(tc.price), "price %v", tc.price)
	}
}
