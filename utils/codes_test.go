package utils

import (
	"strings"
	"testing"
)

func TestGenerateReferenceCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := GenerateReferenceCode()
		if !strings.HasPrefix(code, "RSV-") {
			t.Fatalf("code %q missing RSV- prefix", code)
		}
		if len(code) != len("RSV-")+8 {
			t.Fatalf("code %q has unexpected length", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code %q is not upper case", code)
		}
		if _, dup := seen[code]; dup {
			t.Fatalf("code %q generated twice in 100 draws", code)
		}
		seen[code] = struct{}{}
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("RESORT_TEST_KEY", "  ")
	if got := EnvOrDefault("RESORT_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("EnvOrDefault(blank) = %q, want fallback", got)
	}
	t.Setenv("RESORT_TEST_KEY", "value")
	if got := EnvOrDefault("RESORT_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("EnvOrDefault(set) = %q, want value", got)
	}
}
