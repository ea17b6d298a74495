package utils

import "testing"

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-01-06"); err != nil {
		t.Errorf("ParseDate() failed: %v", err)
	}
	if _, err := ParseDate("01/06/2025"); err == nil {
		t.Error("ParseDate() should reject non-standard formats")
	}
}

func TestParseTime(t *testing.T) {
	if _, err := ParseTime("09:30"); err != nil {
		t.Errorf("ParseTime() failed: %v", err)
	}
	if _, err := ParseTime("9:30 AM"); err == nil {
		t.Error("ParseTime() should reject 12-hour input")
	}
}

func TestValidateFormats(t *testing.T) {
	if !ValidateDateFormat("2025-12-31") {
		t.Error("ValidateDateFormat() rejected a valid date")
	}
	if ValidateDateFormat("2025-13-01") {
		t.Error("ValidateDateFormat() accepted month 13")
	}
	if !ValidateTimeFormat("23:59") {
		t.Error("ValidateTimeFormat() rejected a valid time")
	}
	if ValidateTimeFormat("24:00") {
		t.Error("ValidateTimeFormat() accepted hour 24")
	}
}

func TestFormatTime12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "9:00 AM"},
		{"14:30", "2:30 PM"},
		{"00:00", "12:00 AM"},
		{"garbage", "garbage"}, // invalid input passes through
	}
	for _, tt := range tests {
		if got := FormatTime12(tt.in); got != tt.want {
			t.Errorf("FormatTime12(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateLong(t *testing.T) {
	if got := FormatDateLong("2025-01-06"); got != "January 6, 2025 - Monday" {
		t.Errorf("FormatDateLong() = %q", got)
	}
	if got := FormatDateLong("bogus"); got != "bogus" {
		t.Errorf("FormatDateLong() should pass invalid input through, got %q", got)
	}
}

func TestFormatDateShort(t *testing.T) {
	if got := FormatDateShort("2025-01-06"); got != "Mon Jan 6" {
		t.Errorf("FormatDateShort() = %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	want := "January 6, 2025 - Monday at 2:30 PM"
	if got := FormatDateTime("2025-01-06", "14:30"); got != want {
		t.Errorf("FormatDateTime() = %q, want %q", got, want)
	}
}
