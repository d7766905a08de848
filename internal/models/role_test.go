package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Role
	}{
		{name: "admin", input: "admin", expected: RoleAdmin},
		{name: "enduser", input: "enduser", expected: RoleEndUser},
		{name: "empty defaults to enduser", input: "", expected: RoleEndUser},
		{name: "unknown role coerced to enduser", input: "superuser", expected: RoleEndUser},
		{name: "case sensitive", input: "Admin", expected: RoleEndUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRole(tt.input))
		})
	}
}
