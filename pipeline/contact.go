package pipeline

import (
	"regexp"
	"strings"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\+?\d{0,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\+\d{1,3}(?:[-.\s]?\d{2,4}){3,4}`)

	addressPattern = regexp.MustCompile(`(?is)<address[^>]*>(.*?)</address>`)

	// Theme assets like logo@2x.png match the email shape.
	assetSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}
)

// minPhoneDigits filters out short numeric runs (prices, years) that the
// phone pattern would otherwise accept.
const minPhoneDigits = 10

// extractContact pulls contact details from the candidate pages. It
// combines explicit mailto: and tel: targets with pattern matches over the
// visible text, deduplicating in order of first appearance.
func extractContact(pages []*page) storeinsights.ContactDetails {
	var details storeinsights.ContactDetails
	seenEmail := make(map[string]struct{})
	seenPhone := make(map[string]struct{})

	addEmail := func(raw string) {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" || isAssetName(email) {
			return
		}
		if _, ok := seenEmail[email]; ok {
			return
		}
		seenEmail[email] = struct{}{}
		details.Emails = append(details.Emails, email)
	}

	addPhone := func(raw string) {
		phone := strings.TrimSpace(raw)
		if digitCount(phone) < minPhoneDigits {
			return
		}
		// Keyed by the last 10 digits so "+1 (555) 123-4567" and
		// "555-123-4567" collapse to one entry.
		key := digitsOnly(phone)
		if len(key) > 10 {
			key = key[len(key)-10:]
		}
		if _, ok := seenPhone[key]; ok {
			return
		}
		seenPhone[key] = struct{}{}
		details.PhoneNumbers = append(details.PhoneNumbers, phone)
	}

	for _, pg := range pages {
		for _, target := range pg.analysis.MailtoTargets {
			addEmail(target)
		}
		for _, target := range pg.analysis.TelTargets {
			addPhone(target)
		}
		for _, match := range emailPattern.FindAllString(pg.analysis.Text, -1) {
			addEmail(match)
		}
		for _, match := range phonePattern.FindAllString(pg.analysis.Text, -1) {
			addPhone(match)
		}

		if details.Address == "" {
			if m := addressPattern.FindStringSubmatch(pg.html); m != nil {
				details.Address = stripHTML(m[1])
			}
		}
	}

	return details
}

func isAssetName(email string) bool {
	for _, suffix := range assetSuffixes {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
