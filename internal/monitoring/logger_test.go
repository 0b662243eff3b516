package monitoring

import "testing"

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) { got = format })
	Logf("reading %s")
	if got != "reading %s" {
		t.Errorf("custom logger saw %q", got)
	}

	// nil installs a no-op logger rather than leaving Logf nil.
	SetLogger(nil)
	if Logf == nil {
		t.Fatal("Logf must never be nil")
	}
	got = ""
	Logf("dropped")
	if got != "" {
		t.Error("no-op logger must not forward calls")
	}
}

func TestLogfDefault(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf should default to log.Printf")
	}
}
