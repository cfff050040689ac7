package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{"whole dollars", 10, 1000},
		{"cents", 10.99, 1099},
		{"zero", 0, 0},
		{"sub-cent rounds", 10.995, 1100},
		{"float representation noise", 19.99, 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(tt.price))
		})
	}
}
