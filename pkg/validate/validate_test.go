package validate

import (
	"strings"
	"testing"
)

func TestFilterName(t *testing.T) {
	if got := FilterName("John123"); got != "John" {
		t.Errorf("FilterName(John123) = %q, want John", got)
	}
	if got := FilterName("Mary Jane!"); got != "Mary Jane" {
		t.Errorf("FilterName(Mary Jane!) = %q, want Mary Jane", got)
	}
}

func TestFilterPhone(t *testing.T) {
	if got := FilterPhone("98-7654-3210"); got != "9876543210" {
		t.Errorf("FilterPhone = %q, want 9876543210", got)
	}
	if got := FilterPhone("987654321012345"); got != "9876543210" {
		t.Errorf("FilterPhone should cap at 10 digits, got %q", got)
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "Name is required"},
		{"   ", "Name is required"},
		{"A", "Name must be at least 2 characters long"},
		{"John Doe", ""},
		{strings.Repeat("a", 51), "Name must be less than 50 characters"},
		{" John", "Name cannot start or end with spaces"},
	}
	for _, c := range cases {
		if got := Name(c.in); got != c.want {
			t.Errorf("Name(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBookingName(t *testing.T) {
	if got := BookingName("Jo"); got != "Name must be at least 3 characters" {
		t.Errorf("BookingName(Jo) = %q", got)
	}
	if got := BookingName("Jo3"); got != "Name can contain only letters and spaces" {
		t.Errorf("BookingName(Jo3) = %q", got)
	}
	if got := BookingName("Jon"); got != "" {
		t.Errorf("BookingName(Jon) = %q, want valid", got)
	}
}

func TestEmail(t *testing.T) {
	if got := Email(""); got != "Email is required" {
		t.Errorf("empty email: %q", got)
	}
	for _, bad := range []string{"foo", "foo@bar", "foo bar@x.com", "@x.com"} {
		if Email(bad) == "" {
			t.Errorf("Email(%q) should fail", bad)
		}
	}
	for _, good := range []string{"a@b.co", "user.name@domain.tld"} {
		if got := Email(good); got != "" {
			t.Errorf("Email(%q) = %q, want valid", good, got)
		}
	}
}

func TestPhone(t *testing.T) {
	if got := Phone(""); got != "Phone number is required" {
		t.Errorf("empty phone: %q", got)
	}
	for _, bad := range []string{"1234567890", "987654321", "98765432100", "5876543210"} {
		if Phone(bad) == "" {
			t.Errorf("Phone(%q) should fail", bad)
		}
	}
	if got := Phone("9876543210"); got != "" {
		t.Errorf("Phone(9876543210) = %q, want valid", got)
	}
}

func TestMessage(t *testing.T) {
	if got := Message("too short"); got != "Message must contain at least 5 words" {
		t.Errorf("two-word message: %q", got)
	}
	if got := Message("this message has exactly five words"); got != "" {
		t.Errorf("six-word message should pass, got %q", got)
	}
	if got := Message("one two three four five"); got != "" {
		t.Errorf("five-word message should pass, got %q", got)
	}
	if got := Message(strings.Repeat("word ", 51)); got != "Message must not exceed 50 words" {
		t.Errorf("51-word message: %q", got)
	}
	if got := Message("   "); got != "Message is required" {
		t.Errorf("blank message: %q", got)
	}
}

func TestBookingFields(t *testing.T) {
	if got := FarmSize("two acres"); got != "Please specify farm size (e.g., '2 acres')" {
		t.Errorf("farm size without digits: %q", got)
	}
	if got := FarmSize("2 acres"); got != "" {
		t.Errorf("valid farm size rejected: %q", got)
	}
	if got := CropType("x"); got != "Crop type must be at least 2 characters" {
		t.Errorf("short crop type: %q", got)
	}
	if got := Location("Pune 411"); got != "Location can contain only letters and spaces" {
		t.Errorf("location with digits: %q", got)
	}
	if got := Location("Akole"); got != "" {
		t.Errorf("valid location rejected: %q", got)
	}
}

func TestRequired(t *testing.T) {
	if got := Required("  ", "City"); got != "City is required" {
		t.Errorf("Required blank = %q", got)
	}
	if got := Required("Pune", "City"); got != "" {
		t.Errorf("Required non-blank = %q", got)
	}
}
