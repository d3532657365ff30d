package shared

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatPlaytime(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		want    string
	}{
		{"Minutes", 45, "45 minutes"},
		{"Zero", 0, "0 minutes"},
		{"Hours", 90, "1.5 hours"},
		{"Almost A Day", 23 * 60, "23.0 hours"},
		{"Days", 3 * 24 * 60, "3.0 days (72 hours)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPlaytime(tc.minutes); got != tc.want {
				t.Errorf("FormatPlaytime(%d) = %q, want %q", tc.minutes, got, tc.want)
			}
		})
	}
}

func TestSteamIDConversion(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		const account int64 = 40000000
		id64 := SteamID32To64(account)

		if id64 != 76561198000265728 {
			t.Errorf("unexpected 64-bit ID: %d", id64)
		}
		if got := SteamID64To32(id64); got != account {
			t.Errorf("round trip failed: %d", got)
		}
	})

	t.Run("Offset Base", func(t *testing.T) {
		if got := SteamID64To32(76561197960265728); got != 0 {
			t.Errorf("expected account 0 at offset base, got %d", got)
		}
	})
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == b {
		t.Error("expected unique IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected UUID string, got %q", a)
	}
}

func TestMarshalJSON(t *testing.T) {
	payload := map[string]int{"value": 1}

	t.Run("Compact", func(t *testing.T) {
		data, err := MarshalJSON(payload, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(string(data), "\n") {
			t.Errorf("compact output should be single line: %q", data)
		}
	})

	t.Run("Pretty", func(t *testing.T) {
		data, err := MarshalJSON(payload, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(data), "  \"value\"") {
			t.Errorf("expected indented output: %q", data)
		}

		var decoded map[string]int
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Errorf("pretty output should stay valid JSON: %v", err)
		}
	})
}
