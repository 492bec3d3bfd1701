package models

import "testing"

func TestNewUsername_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Username
	}{
		{"alice", "alice"},
		{"Bob", "bob"},
		{"  carol  ", "carol"},
		{"user.name-1_2", "user.name-1_2"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewUsername(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewUsername_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"whitespace only", "   "},
		{"too long", string(make([]byte, 65))},
		{"inner space", "ali ce"},
		{"at sign", "alice@example.com"},
		{"slash", "a/b/c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewUsername(tt.in); err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
		})
	}
}
