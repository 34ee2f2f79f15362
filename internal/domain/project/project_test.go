package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestImageHint(t *testing.T) {
	p := &Project{ID: "p1"}
	assert.Equal(t, DefaultImageHint, p.ImageHint())

	p.DataAIHint = strPtr("code assistant")
	assert.Equal(t, "code assistant", p.ImageHint())
}

func TestValidateList(t *testing.T) {
	ok := []*Project{
		{ID: "a", Technologies: []string{"Go"}},
		{ID: "b", Technologies: []string{"Go", "Go"}},
	}
	assert.NoError(t, ValidateList(ok))

	assert.ErrorIs(t, ValidateList([]*Project{{Technologies: []string{"Go"}}}), ErrEmptyID)
	assert.ErrorIs(t, ValidateList([]*Project{{ID: "a"}}), ErrNoTechnologies)
	assert.ErrorIs(t, ValidateList([]*Project{
		{ID: "a", Technologies: []string{"Go"}},
		{ID: "a", Technologies: []string{"Rust"}},
	}), ErrDuplicateID)
}
