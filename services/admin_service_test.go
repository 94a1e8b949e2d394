package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionSize(t *testing.T) {
	assert.Equal(t, 0, unionSize(nil, nil))
	assert.Equal(t, 3, unionSize([]uint{1, 2, 3}, nil))
	assert.Equal(t, 3, unionSize([]uint{1, 2}, []uint{2, 3}))
	assert.Equal(t, 2, unionSize([]uint{5, 5, 5}, []uint{5, 9}))
}
