package config

import "testing"

func TestEnsureConnectTimeout_KeywordDSN(t *testing.T) {
	got := ensureConnectTimeout("host=localhost user=fleet dbname=fleet")
	want := "host=localhost user=fleet dbname=fleet connect_timeout=5"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEnsureConnectTimeout_URLWithoutQuery(t *testing.T) {
	got := ensureConnectTimeout("postgres://fleet:pw@localhost:5432/fleet")
	want := "postgres://fleet:pw@localhost:5432/fleet?connect_timeout=5"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEnsureConnectTimeout_URLWithQuery(t *testing.T) {
	got := ensureConnectTimeout("postgres://localhost/fleet?sslmode=disable")
	want := "postgres://localhost/fleet?sslmode=disable&connect_timeout=5"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEnsureConnectTimeout_AlreadySet(t *testing.T) {
	for _, dsn := range []string{
		"postgres://localhost/fleet?connect_timeout=30",
		"host=localhost connect_timeout=2",
	} {
		if got := ensureConnectTimeout(dsn); got != dsn {
			t.Errorf("expected %q untouched, got %q", dsn, got)
		}
	}
}
