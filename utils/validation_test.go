package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"0912-345-678",
		"0912345678",
		"+886912345678",
		"098 765 4321",
	}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), p)
	}

	invalid := []string{
		"",
		"12345",
		"phone",
		"0912-345-678x",
		"++886912345678",
	}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), p)
	}
}
