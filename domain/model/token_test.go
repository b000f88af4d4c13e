package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"token-tool/domain/model"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty", "", ""},
		{"short", "short", "sho...ort"},
		{"boundary twelve", "abcdefghijkl", "abc...jkl"},
		{"long", "EAAB1234567890XYZ", "EAAB12...0XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.MaskToken(tt.token))
		})
	}
}
