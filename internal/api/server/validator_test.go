package server

import (
	"testing"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title string   `json:"title" validate:"required,max=5"`
	Tags  []string `json:"tags" validate:"omitempty,dive,max=3"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{name: "valid", in: sample{Title: "ok", Tags: []string{"go"}}},
		{name: "missing title", in: sample{}, wantErr: "invalid request: title is required"},
		{name: "title too long", in: sample{Title: "toolong"}, wantErr: "invalid request: title must satisfy max=5"},
		{name: "tag too long", in: sample{Title: "ok", Tags: []string{"rust"}}, wantErr: "invalid request: tags[0] must satisfy max=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperr.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort("8080"))
	assert.Error(t, validatePort("http"))
	assert.Error(t, validatePort("70000"))
}
