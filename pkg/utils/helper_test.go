package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-5", 10))
	assert.Equal(t, 25, ParseInt("25", 10))
}

func TestNormalizeSeatNumber(t *testing.T) {
	assert.Equal(t, "12A", NormalizeSeatNumber(" 12a "))
	assert.Equal(t, "3F", NormalizeSeatNumber("3f"))
	assert.Equal(t, "12A", NormalizeSeatNumber("12A"))
}

func TestGenerateBookingReference_Format(t *testing.T) {
	ref := GenerateBookingReference()
	assert.Regexp(t, regexp.MustCompile(`^FL-\d{8}-\d{6}-\d{4}$`), ref)
}

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
