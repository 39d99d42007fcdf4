package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.March, 5))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2024-03-05"` {
		t.Errorf("Marshal() = %s, want %q", b, "2024-03-05")
	}

	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != "null" {
		t.Errorf("zero Date Marshal() = %s, want null", b)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2023-12-31"`), &d); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if d.String() != "2023-12-31" {
		t.Errorf("Date = %q, want %q", d.String(), "2023-12-31")
	}

	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero Date after null")
	}

	if err := json.Unmarshal([]byte(`"31.12.2023"`), &d); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if d.String() != "2024-01-02" {
		t.Errorf("Scan(time.Time) = %q, want %q", d.String(), "2024-01-02")
	}

	if err := d.Scan([]byte("2024-02-03T00:00:00Z")); err != nil {
		t.Fatalf("Scan([]byte) error = %v", err)
	}
	if d.String() != "2024-02-03" {
		t.Errorf("Scan([]byte) = %q, want %q", d.String(), "2024-02-03")
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != nil {
		t.Errorf("zero Date Value() = %v, want nil", v)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error for unsupported source type")
	}
}
