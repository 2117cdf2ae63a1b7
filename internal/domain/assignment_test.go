package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignment_DisplayGrade(t *testing.T) {
	tests := []struct {
		grade string
		want  string
	}{
		{"95 / 100", "95"},
		{"87/100", "87"},
		{"100", "100"},
		{" 92 ", "92"},
		{"", ""},
	}
	for _, tt := range tests {
		a := Assignment{Grade: tt.grade}
		assert.Equal(t, tt.want, a.DisplayGrade(), "grade %q", tt.grade)
	}
}

func TestAssignment_Graded(t *testing.T) {
	assert.False(t, (&Assignment{}).Graded())
	assert.False(t, (&Assignment{Grade: "   "}).Graded())
	assert.True(t, (&Assignment{Grade: "95 / 100"}).Graded())
}
