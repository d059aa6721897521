package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	cases := map[string]string{
		"13812345678": "138****5678",
		"1234567":     "123****4567",
		"12345":       "1****",
		"1":           "1",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskPhone(in), in)
	}
}
