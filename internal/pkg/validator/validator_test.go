package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "ana@x.com"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567e89b42d3a456426614174000",
		"g23e4567-e89b-42d3-a456-426614174000",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-10"); !ok {
		t.Errorf("IsValidDate(2024-01-10) = false, want true")
	}
	for _, s := range []string{"", "2024-13-01", "01/10/2024", "2024-02-30"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	for _, s := range []string{"08:00", "17:30:00", "23:59"} {
		if _, ok := IsValidTime(s); !ok {
			t.Errorf("IsValidTime(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "25:00", "8am"} {
		if _, ok := IsValidTime(s); ok {
			t.Errorf("IsValidTime(%q) = true, want false", s)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  string // "" means nil
	}{
		{"", ""},
		{"   ", ""},
		{"abc", ""},
		{"75000", "75000"},
		{"75,000.50", "75000.5"},
		{" 0 ", "0"},
	}
	for _, c := range cases {
		got := ParseAmount(c.input)
		if c.want == "" {
			if got != nil {
				t.Errorf("ParseAmount(%q) = %v, want nil", c.input, got)
			}
			continue
		}
		if got == nil || got.String() != c.want {
			t.Errorf("ParseAmount(%q) = %v, want %s", c.input, got, c.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt(""); got != nil {
		t.Errorf("ParseInt(\"\") = %v, want nil", *got)
	}
	if got := ParseInt("2015"); got == nil || *got != 2015 {
		t.Errorf("ParseInt(\"2015\") = %v, want 2015", got)
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, ok := ParseOptionalDate("")
	if !ok || got != nil {
		t.Errorf("ParseOptionalDate(\"\") = %v, %v; want nil, true", got, ok)
	}
	got, ok = ParseOptionalDate("2024-01-10")
	if !ok || got == nil || !got.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseOptionalDate(2024-01-10) = %v, %v", got, ok)
	}
	if _, ok := ParseOptionalDate("10/01/2024"); ok {
		t.Errorf("ParseOptionalDate(10/01/2024) ok = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	errs.Required("email", " ")
	errs.Required("first_name", "Ana")
	if len(errs) != 1 || errs[0].Field != "email" {
		t.Fatalf("Required() recorded %v", errs)
	}
	if errs.Err() == nil {
		t.Errorf("Err() = nil, want error")
	}
	if (ValidationErrors{}).Err() != nil {
		t.Errorf("empty Err() != nil")
	}
	if errs.ToMap()["email"] != "email is required" {
		t.Errorf("ToMap() = %v", errs.ToMap())
	}
}
