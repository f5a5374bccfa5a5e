package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIntWithDefault(t *testing.T) {
	assert.Equal(t, 3, ToIntWithDefault("3", 5))
	assert.Equal(t, 5, ToIntWithDefault("", 5))
	assert.Equal(t, 5, ToIntWithDefault("three", 5))
	assert.Equal(t, -1, ToIntWithDefault("-1", 5))
}

func TestIsIntInRange(t *testing.T) {
	assert.True(t, IsIntInRange(1, 1, 5))
	assert.True(t, IsIntInRange(5, 1, 5))
	assert.False(t, IsIntInRange(0, 1, 5))
	assert.False(t, IsIntInRange(6, 1, 5))
}

func TestToFloat64WithError(t *testing.T) {
	cases := []struct {
		input     string
		expected  float64
		expectErr bool
	}{
		{input: "51.5073", expected: 51.5073},
		{input: " -0.1277 ", expected: -0.1277},
		{input: "10", expected: 10},
		{input: "", expectErr: true},
		{input: "north", expectErr: true},
		{input: "NaN", expectErr: true},
		{input: "Inf", expectErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			value, err := ToFloat64WithError(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}
