package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUrgency(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", UrgencyStandard, true},
		{"standard", UrgencyStandard, true},
		{" Emergency ", UrgencyEmergency, true},
		{"EMERGENCY", UrgencyEmergency, true},
		{"asap", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeUrgency(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}
