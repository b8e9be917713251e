package service

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/octobees/leadscout/internal/entity"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const (
	trackingPrefix     = "utm_"
	defaultPhoneRegion = "GB"
	missingValue       = "N/A"
)

var allowedSocialDomains = map[string]string{
	"linkedin.com":  "linkedin",
	"instagram.com": "instagram",
	"instagr.am":    "instagram",
}

// ContactSanitizer normalizes the contact fields the model reported.
// It never invents values: unusable emails and social links are cleared,
// phones that cannot be parsed are kept as reported.
type ContactSanitizer struct {
	Region string
}

// NewContactSanitizer builds a sanitizer that parses local phone numbers in region.
func NewContactSanitizer(region string) *ContactSanitizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ContactSanitizer{Region: region}
}

// Apply returns a copy of lead with cleaned contact fields.
func (s *ContactSanitizer) Apply(lead entity.Lead) entity.Lead {
	lead.Phone = s.cleanPhone(lead.Phone)
	lead.Email = cleanEmail(lead.Email)
	lead.Instagram = cleanSocialLink("instagram", lead.Instagram)
	lead.LinkedIn = cleanSocialLink("linkedin", lead.LinkedIn)
	return lead
}

func (s *ContactSanitizer) cleanPhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == missingValue {
		return raw
	}
	if normalized := normalizePhone(raw, s.Region); normalized != "" {
		return normalized
	}
	return raw
}

func cleanEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	email = strings.TrimPrefix(email, "mailto:")
	if email == "" || !emailPattern.MatchString(email) {
		return ""
	}
	domain := email[strings.LastIndexByte(email, '@')+1:]
	if !isDomainValid(domain) {
		return ""
	}
	if ascii, err := idnaProfile.ToASCII(domain); err != nil || ascii == "" {
		return ""
	}
	return email
}

func cleanSocialLink(platform, raw string) string {
	u, err := sanitizeURL(raw)
	if err != nil {
		return ""
	}
	hostPlatform, ok := hostMatchesAllowed(u.Hostname())
	if !ok || hostPlatform != platform {
		return ""
	}
	stripTracking(u)
	return u.String()
}

func hostMatchesAllowed(host string) (string, bool) {
	host = strings.ToLower(strings.Trim(strings.TrimSpace(host), "."))
	if host == "" {
		return "", false
	}
	for domain, platform := range allowedSocialDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return platform, true
		}
	}
	return "", false
}

func sanitizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == missingValue {
		return nil, errors.New("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, errors.New("invalid url")
	}
	u.Scheme = "https"
	return u, nil
}

func stripTracking(u *url.URL) {
	if u == nil {
		return
	}
	query := u.Query()
	changed := false
	for key := range query {
		if strings.HasPrefix(strings.ToLower(key), trackingPrefix) {
			query.Del(key)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
}

func normalizePhone(raw, region string) string {
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
