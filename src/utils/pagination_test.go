package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		name               string
		page, size         int
		wantPage, wantSize int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"size too large", 2, 101, 2, 20},
		{"size upper bound kept", 1, 100, 1, 100},
		{"valid passthrough", 4, 25, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := NormalizePaging(tt.page, tt.size)
			require.Equal(t, tt.wantPage, page)
			require.Equal(t, tt.wantSize, size)
		})
	}
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, Offset(1, 20))
	require.Equal(t, 20, Offset(2, 20))
	require.Equal(t, 90, Offset(10, 10))
	require.Equal(t, 0, Offset(0, 20))
}

func TestValidationErrorMessageNamesFieldAndIDs(t *testing.T) {
	err := &ValidationError{Field: "genre_ids", MissingIDs: []uint{4, 9}}
	require.Equal(t, "unknown genre_ids: [4 9]", err.Error())
}
