package service

import (
	"testing"

	"github.com/octobees/leadscout/internal/entity"
)

func TestContactSanitizer_Apply(t *testing.T) {
	s := NewContactSanitizer("gb")
	lead := s.Apply(entity.Lead{
		Name:      "Crumbs",
		Phone:     "020 7946 0958",
		Email:     " Hello@Crumbs.co.uk ",
		Instagram: "instagram.com/crumbsleeds?utm_source=maps",
		LinkedIn:  "https://www.facebook.com/crumbs",
		Website:   "crumbs.co.uk",
	})

	if lead.Phone != "+442079460958" {
		t.Fatalf("expected E.164 phone, got %q", lead.Phone)
	}
	if lead.Email != "hello@crumbs.co.uk" {
		t.Fatalf("expected normalized email, got %q", lead.Email)
	}
	if lead.Instagram != "https://instagram.com/crumbsleeds" {
		t.Fatalf("expected cleaned instagram link, got %q", lead.Instagram)
	}
	if lead.LinkedIn != "" {
		t.Fatalf("expected foreign host to be cleared, got %q", lead.LinkedIn)
	}
	if lead.Website != "crumbs.co.uk" || lead.Name != "Crumbs" {
		t.Fatalf("expected untouched fields, got %+v", lead)
	}
}

func TestContactSanitizer_KeepsUnparsedPhone(t *testing.T) {
	s := NewContactSanitizer("")
	if s.Region != defaultPhoneRegion {
		t.Fatalf("expected default region, got %s", s.Region)
	}
	for _, phone := range []string{"N/A", "", "call the shop"} {
		if got := s.cleanPhone(phone); got != phone {
			t.Fatalf("cleanPhone(%q)=%q, want unchanged", phone, got)
		}
	}
}

func TestCleanEmail(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"mailto:Owner@Bakery.com", "owner@bakery.com"},
		{"not-an-email", ""},
		{"bad@-domain.com", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := cleanEmail(tc.input); got != tc.want {
			t.Fatalf("cleanEmail(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestHostMatchesAllowed(t *testing.T) {
	if platform, ok := hostMatchesAllowed("uk.linkedin.com"); !ok || platform != "linkedin" {
		t.Fatalf("expected linkedin subdomain to match, got %q %v", platform, ok)
	}
	if _, ok := hostMatchesAllowed("notinstagram.com"); ok {
		t.Fatalf("expected lookalike host to be rejected")
	}
}
