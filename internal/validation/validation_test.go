package validation

import "testing"

func TestValidID(t *testing.T) {
	if !ValidID("a2cfd6b2-57fb-4b3e-8a6e-0a6f23e0e5d8") {
		t.Error("expected well-formed UUID to be valid")
	}
	for _, id := range []string{"", "123", "not-a-uuid", "a2cfd6b2-57fb-4b3e-8a6e"} {
		if ValidID(id) {
			t.Errorf("ValidID(%q) = true; want false", id)
		}
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"anna@example.com", true},
		{"anna.k@sub.example.co", true},
		{"", false},
		{"anna", false},
		{"anna@", false},
		{"@example.com", false},
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v; want %v", tc.email, got, tc.want)
		}
	}
}

func TestValidName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Anna", true},
		{"Anna Maria", true},
		{"   ", false},
		{"", false},
		{"Anna1", false},
		{"An-na", false},
	}
	for _, tc := range cases {
		if got := ValidName(tc.name); got != tc.want {
			t.Errorf("ValidName(%q) = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidURL(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://example.com/photo.png", true},
		{"http://example.com", true},
		{"ftp://example.com/a.jpg", true},
		{"example.com/photo.png", false},
		{"https://exa mple.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidURL(tc.url); got != tc.want {
			t.Errorf("ValidURL(%q) = %v; want %v", tc.url, got, tc.want)
		}
	}
}

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"aB3!efgh", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols123", false},
	}
	for _, tc := range cases {
		if got := StrongPassword(tc.password); got != tc.want {
			t.Errorf("StrongPassword(%q) = %v; want %v", tc.password, got, tc.want)
		}
	}
}
