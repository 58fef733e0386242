package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("010-1234-5678"))
	assert.True(t, IsValidPhone(""), "空号码视为未填写")
	assert.False(t, IsValidPhone("010-123-5678"))
	assert.False(t, IsValidPhone("02-1234-5678"))
	assert.False(t, IsValidPhone("01012345678"))
	assert.False(t, IsValidPhone("010-1234-5678 "))
}

func TestIsValidISODate(t *testing.T) {
	assert.True(t, IsValidISODate("2024-09-15"))
	assert.True(t, IsValidISODate(""), "空串表示入住日期未定")
	assert.False(t, IsValidISODate("2024/09/15"))
	assert.False(t, IsValidISODate("2024-13-01"))
	assert.False(t, IsValidISODate("15-09-2024"))
}

func TestNewIDUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
