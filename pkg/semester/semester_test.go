package semester

import (
	"reflect"
	"testing"
)

func TestValid(t *testing.T) {
	for label, want := range map[string]bool{
		"2025A":  true,
		"2025B":  true,
		"2025C":  false,
		"25A":    false,
		"2025AB": false,
		"":       false,
		"all":    false,
	} {
		if got := Valid(label); got != want {
			t.Errorf("Valid(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestPrevious(t *testing.T) {
	got := Previous("2025A", 3)
	want := []string{"2024B", "2024A", "2023B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Previous(2025A, 3) = %v, want %v", got, want)
	}

	got = Previous("2025B", 2)
	want = []string{"2025A", "2024B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Previous(2025B, 2) = %v, want %v", got, want)
	}
}

func TestPreviousMalformed(t *testing.T) {
	if got := Previous("bogus", 3); len(got) != 0 {
		t.Errorf("Previous(bogus) = %v, want empty", got)
	}
}

func TestOptionsPrependsUnseenNewest(t *testing.T) {
	got := Options("2025B", "2026A", 2)
	want := []string{"2026A", "2025B", "2025A", "2024B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options = %v, want %v", got, want)
	}
}

func TestOptionsSkipsSeenNewest(t *testing.T) {
	got := Options("2025B", "2025A", 2)
	want := []string{"2025B", "2025A", "2024B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options = %v, want %v", got, want)
	}

	got = Options("2025B", "2025B", 1)
	want = []string{"2025B", "2025A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options with newest == current = %v, want %v", got, want)
	}
}

func TestOptionsEmptyNewest(t *testing.T) {
	got := Options("2025B", "", 1)
	want := []string{"2025B", "2025A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options = %v, want %v", got, want)
	}
}
