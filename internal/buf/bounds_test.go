package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulFits(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"zero times anything", 0, math.MaxInt, 0, true},
		{"anything times zero", math.MaxInt, 0, 0, true},
		{"small values", 1024, 8, 8192, true},
		{"max times one", math.MaxInt, 1, math.MaxInt, true},
		{"max times two overflows", math.MaxInt, 2, 0, false},
		{"large count large size overflows", math.MaxInt / 2, 4, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulFits(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
