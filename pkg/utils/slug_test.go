package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Getting Started", "getting-started"},
		{"punctuation collapsed", "What's new?! (2024)", "what-s-new-2024"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"already a slug", "release-notes", "release-notes"},
		{"empty", "", "untitled"},
		{"only symbols", "!!!", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
