package hashid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/uniacid/go-hashid-utils/hashid"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseHasherType
// ──────────────────────────────────────────────────────────────────────────────

func TestParseHasherType_ValidSet(t *testing.T) {
	tests := []struct {
		name string
		want hashid.HasherType
	}{
		{"default", hashid.TypeDefault},
		{"secure", hashid.TypeSecure},
		{"custom", hashid.TypeCustom},
	}
	for _, tc := range tests {
		got, err := hashid.ParseHasherType(tc.name)
		if err != nil {
			t.Errorf("ParseHasherType(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("ParseHasherType(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// Every unknown string must be rejected by the same branch, whatever it
// contains — there is no secondary lookup an input could reach.
func TestParseHasherType_RejectsUnknown(t *testing.T) {
	inputs := []string{
		"",
		"md5",
		"Default", // case-sensitive
		"default ",
		"../../etc/passwd",
		"default; rm -rf /",
		"%s%s%s%n",
		"default' OR '1'='1",
		"secure\x00",
	}
	for _, in := range inputs {
		_, err := hashid.ParseHasherType(in)
		if !errors.Is(err, hashid.ErrUnknownHasherType) {
			t.Errorf("ParseHasherType(%q): expected ErrUnknownHasherType, got %v", in, err)
		}
	}
}

func TestParseHasherType_ErrorNamesValidSet(t *testing.T) {
	_, err := hashid.ParseHasherType("invalid")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"default", "secure", "custom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not enumerate %q", err, want)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// HasherTypes
// ──────────────────────────────────────────────────────────────────────────────

func TestHasherTypes_StableOrder(t *testing.T) {
	want := []string{"default", "secure", "custom"}
	for i := 0; i < 3; i++ {
		got := hashid.HasherTypes()
		if len(got) != len(want) {
			t.Fatalf("HasherTypes() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("HasherTypes() = %v, want %v", got, want)
			}
		}
	}
}

func TestHasherTypes_ReturnsCopy(t *testing.T) {
	got := hashid.HasherTypes()
	got[0] = "mutated"
	if hashid.HasherTypes()[0] != "default" {
		t.Error("mutating the returned slice must not affect later calls")
	}
}
