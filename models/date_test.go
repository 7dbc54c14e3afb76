package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2024-03-24"` {
		t.Errorf("expected \"2024-03-24\", got %s", data)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"date only", `"2024-03-24"`, "2024-03-24", false},
		{"full timestamp", `"2024-03-24T00:00:00Z"`, "2024-03-24", false},
		{"null", `null`, "0001-01-01", false},
		{"garbage", `"24/03/2024"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := d.Time.Format("2006-01-02"); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time failed: %v", err)
	}
	if d.Time.Format("2006-01-02") != "2023-11-05" {
		t.Errorf("unexpected scanned value: %v", d.Time)
	}

	if err := d.Scan([]byte("2022-07-10")); err != nil {
		t.Fatalf("scan []byte failed: %v", err)
	}
	if d.Time.Format("2006-01-02") != "2022-07-10" {
		t.Errorf("unexpected scanned value: %v", d.Time)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDateValueNil(t *testing.T) {
	var d *Date
	v, err := d.Value()
	if err != nil {
		t.Fatalf("nil Value failed: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil driver value, got %v", v)
	}
}
