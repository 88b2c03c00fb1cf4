package session

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	t.Setenv(baseDirEnv, "/tmp/cc")

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "main", false},
		{"digits", "kitchen2", false},
		{"hyphen and underscore", "test_kitchen-2", false},
		{"leading digit", "9lives", false},
		{"max length", strings.Repeat("a", 64), false},
		{"empty", "", true},
		{"leading hyphen", "-main", true},
		{"leading underscore", "_main", true},
		{"uppercase", "Main", true},
		{"dot", "my.session", true},
		{"dot dot", "..", true},
		{"slash", "a/b", true},
		{"too long", strings.Repeat("a", 65), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNameSocketLength(t *testing.T) {
	t.Setenv(baseDirEnv, "/tmp/"+strings.Repeat("d", 60))

	if err := ValidateName("main"); err != nil {
		t.Errorf("short name rejected: %v", err)
	}
	err := ValidateName(strings.Repeat("s", 40))
	if err == nil || !strings.Contains(err.Error(), "socket path") {
		t.Errorf("long socket path: err = %v, want socket path error", err)
	}
}
