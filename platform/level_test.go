package platform

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level  Level
		want   string
		letter byte
	}{
		{LevelNone, "NONE", 'N'},
		{LevelError, "ERROR", 'E'},
		{LevelWarn, "WARN", 'W'},
		{LevelInfo, "INFO", 'I'},
		{LevelDebug, "DEBUG", 'D'},
		{LevelVerbose, "VERBOSE", 'V'},
		{Level(9), "Level(9)", '?'},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.level.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q, want %q", got, tt.letter)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"none", LevelNone},
		{"off", LevelNone},
		{"Error", LevelError},
		{"warning", LevelWarn},
		{" info ", LevelInfo},
		{"D", LevelDebug},
		{"verbose", LevelVerbose},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(\"loud\") expected an error")
	}
}
