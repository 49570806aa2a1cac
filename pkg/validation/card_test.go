package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCardBrand(t *testing.T) {
	assert.Equal(t, Visa, DetectCardBrand("4242 4242 4242 4242"))
	assert.Equal(t, Mastercard, DetectCardBrand("5555555555554444"))
	assert.Equal(t, Unknown, DetectCardBrand("4242424242424241"))
	assert.Equal(t, Unknown, DetectCardBrand("378282246310005"))
	assert.Equal(t, Unknown, DetectCardBrand(""))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "************4242", MaskCardNumber("4242 4242 4242 4242"))
	assert.Equal(t, "123", MaskCardNumber("123"))
}
