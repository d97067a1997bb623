package monthkey

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := Key(2026, time.January); got != "2026-0" {
		t.Errorf("expected 2026-0, got %s", got)
	}
	if got := Key(2026, time.December); got != "2026-11" {
		t.Errorf("expected 2026-11, got %s", got)
	}
}

func TestKeyInjective(t *testing.T) {
	seen := map[string]string{}
	for year := 1999; year <= 2031; year++ {
		for m := time.January; m <= time.December; m++ {
			k := Key(year, m)
			if prev, ok := seen[k]; ok {
				t.Fatalf("key %s collides with %s", k, prev)
			}
			seen[k] = k
		}
	}
}

func TestPrevWrapsYear(t *testing.T) {
	y, m := Prev(2026, time.January)
	if y != 2025 || m != time.December {
		t.Errorf("expected 2025 December, got %d %s", y, m)
	}
	y, m = Prev(2026, time.March)
	if y != 2026 || m != time.February {
		t.Errorf("expected 2026 February, got %d %s", y, m)
	}
}

func TestNextWrapsYear(t *testing.T) {
	y, m := Next(2025, time.December)
	if y != 2026 || m != time.January {
		t.Errorf("expected 2026 January, got %d %s", y, m)
	}
}

func TestAdd(t *testing.T) {
	y, m := Add(2026, time.August, -1)
	if y != 2026 || m != time.July {
		t.Errorf("expected 2026 July, got %d %s", y, m)
	}
	y, m = Add(2026, time.January, -2)
	if y != 2025 || m != time.November {
		t.Errorf("expected 2025 November, got %d %s", y, m)
	}
	y, m = Add(2025, time.November, 14)
	if y != 2027 || m != time.January {
		t.Errorf("expected 2027 January, got %d %s", y, m)
	}
}

func TestParse(t *testing.T) {
	y, m, err := Parse("2026-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y != 2026 || m != time.August {
		t.Errorf("expected 2026 August, got %d %s", y, m)
	}
	if _, _, err := Parse("August 2026"); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestTitle(t *testing.T) {
	if got := Title(2026, time.August); got != "August 2026" {
		t.Errorf("unexpected title: %s", got)
	}
}
