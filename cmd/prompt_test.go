package cmd

import "testing"

func TestParseDays(t *testing.T) {
	days, err := parseDays("1,3,5")
	if err != nil {
		t.Fatalf("parseDays: %v", err)
	}
	if len(days) != 3 || days[0] != 1 || days[1] != 3 || days[2] != 5 {
		t.Errorf("parseDays = %v, want [1 3 5]", days)
	}

	days, err = parseDays(" 0 , 6 ")
	if err != nil {
		t.Fatalf("parseDays with spaces: %v", err)
	}
	if len(days) != 2 || days[0] != 0 || days[1] != 6 {
		t.Errorf("parseDays with spaces = %v, want [0 6]", days)
	}

	for _, in := range []string{"7", "-1", "mon", "1,,x"} {
		if _, err := parseDays(in); err == nil {
			t.Errorf("parseDays(%q) succeeded", in)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("123e4567-e89b-12d3-a456-426614174000"); got != "123e4567" {
		t.Errorf("shortID = %q, want first 8 characters", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID on short input = %q", got)
	}
}
