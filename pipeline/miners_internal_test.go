package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

func TestMineSocial(t *testing.T) {
	t.Parallel()

	t.Run("maps profile links to platforms", func(t *testing.T) {
		t.Parallel()

		handles := mineSocial([]storeinsights.Link{
			{URL: "https://www.instagram.com/acme", Text: "Instagram"},
			{URL: "https://x.com/acme", Text: "X"},
			{URL: "https://www.tiktok.com/@acme", Text: "TikTok"},
		})

		assert.Equal(t, "https://www.instagram.com/acme", handles[storeinsights.PlatformInstagram])
		assert.Equal(t, "https://x.com/acme", handles[storeinsights.PlatformTwitter], "x.com collapses onto twitter")
		assert.Equal(t, "https://www.tiktok.com/@acme", handles[storeinsights.PlatformTikTok])
	})

	t.Run("first profile per platform wins", func(t *testing.T) {
		t.Parallel()

		handles := mineSocial([]storeinsights.Link{
			{URL: "https://instagram.com/first"},
			{URL: "https://instagram.com/second"},
		})

		assert.Equal(t, "https://instagram.com/first", handles[storeinsights.PlatformInstagram])
	})

	t.Run("strips tracking parameters", func(t *testing.T) {
		t.Parallel()

		handles := mineSocial([]storeinsights.Link{
			{URL: "https://facebook.com/acme?utm_source=footer&fbclid=abc"},
		})

		assert.Equal(t, "https://facebook.com/acme", handles[storeinsights.PlatformFacebook])
	})

	t.Run("ignores bare platform roots and unrelated hosts", func(t *testing.T) {
		t.Parallel()

		handles := mineSocial([]storeinsights.Link{
			{URL: "https://instagram.com/"},
			{URL: "https://example.com/blog/instagram-tips"},
			{URL: "https://notinstagram.com/acme"},
		})

		assert.Empty(t, handles)
	})
}

func TestClassifyLinks(t *testing.T) {
	t.Parallel()

	t.Run("assigns purposes by keyword", func(t *testing.T) {
		t.Parallel()

		links := classifyLinks([]storeinsights.Link{
			{URL: "https://shop.example.com/pages/contact", Text: "Contact Us"},
			{URL: "https://shop.example.com/pages/track-order", Text: "Track Your Order"},
			{URL: "https://shop.example.com/blogs/journal", Text: "Journal"},
			{URL: "https://shop.example.com/pages/size-guide", Text: "Size Guide"},
		})

		assert.Equal(t, "https://shop.example.com/pages/contact", links[storeinsights.LinkContactUs])
		assert.Equal(t, "https://shop.example.com/pages/track-order", links[storeinsights.LinkOrderTracking])
		assert.Equal(t, "https://shop.example.com/blogs/journal", links[storeinsights.LinkBlog])
		assert.Equal(t, "https://shop.example.com/pages/size-guide", links[storeinsights.LinkSizeGuide])
	})

	t.Run("first match per purpose wins", func(t *testing.T) {
		t.Parallel()

		links := classifyLinks([]storeinsights.Link{
			{URL: "https://shop.example.com/pages/contact", Text: "Contact"},
			{URL: "https://shop.example.com/pages/contact-wholesale", Text: "Wholesale Contact"},
		})

		assert.Equal(t, "https://shop.example.com/pages/contact", links[storeinsights.LinkContactUs])
	})

	t.Run("a link fills at most one purpose", func(t *testing.T) {
		t.Parallel()

		// "about our tracking" matches order tracking first, so the about
		// bucket stays open for a later link.
		links := classifyLinks([]storeinsights.Link{
			{URL: "https://shop.example.com/pages/tracking", Text: "About our tracking"},
			{URL: "https://shop.example.com/pages/about", Text: "About"},
		})

		assert.Equal(t, "https://shop.example.com/pages/tracking", links[storeinsights.LinkOrderTracking])
		assert.Equal(t, "https://shop.example.com/pages/about", links[storeinsights.LinkAboutUs])
	})
}

func TestFilterCandidatePaths(t *testing.T) {
	t.Parallel()

	t.Run("keeps content pages and policy pages only", func(t *testing.T) {
		t.Parallel()

		kept := filterCandidatePaths([]string{
			"https://shop.example.com/pages/about-us",
			"https://shop.example.com/policies/privacy-policy",
			"https://shop.example.com/products/all-about-linen",
			"https://shop.example.com/collections/about-town",
			"https://shop.example.com/",
		})

		assert.Equal(t, []string{
			"https://shop.example.com/pages/about-us",
			"https://shop.example.com/policies/privacy-policy",
		}, kept)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, filterCandidatePaths(nil))
	})
}

func TestExtractContact(t *testing.T) {
	t.Parallel()

	t.Run("combines explicit targets and text matches", func(t *testing.T) {
		t.Parallel()

		pages := []*page{{
			analysis: &storeinsights.PageAnalysis{
				MailtoTargets: []string{"Hello@Acme.com"},
				TelTargets:    []string{"+1 555 123 4567"},
				Text:          "Write to hello@acme.com or support@acme.com, or call (555) 123-4567.",
			},
		}}

		details := extractContact(pages)

		assert.Equal(t, []string{"hello@acme.com", "support@acme.com"}, details.Emails, "case-insensitive dedupe")
		assert.Equal(t, []string{"+1 555 123 4567"}, details.PhoneNumbers, "same digits dedupe across formats")
	})

	t.Run("drops short numeric runs and asset names", func(t *testing.T) {
		t.Parallel()

		pages := []*page{{
			analysis: &storeinsights.PageAnalysis{
				Text: "Order #12345 ships in 3-5 days. logo@2x.png",
			},
		}}

		details := extractContact(pages)

		assert.Empty(t, details.Emails)
		assert.Empty(t, details.PhoneNumbers)
	})

	t.Run("captures an address block", func(t *testing.T) {
		t.Parallel()

		pages := []*page{{
			html:     `<footer><address>100 Main St<br>Portland, OR 97201</address></footer>`,
			analysis: &storeinsights.PageAnalysis{},
		}}

		details := extractContact(pages)

		assert.Equal(t, "100 Main St Portland, OR 97201", details.Address)
	})
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 19.99, parsePrice("19.99"))
	assert.Equal(t, 1299.0, parsePrice("1,299.00"))
	assert.Equal(t, 0.0, parsePrice(""))
	assert.Equal(t, 0.0, parsePrice("free"))
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Soft organic cotton tee.", stripHTML("<p>Soft <strong>organic</strong> cotton tee.</p>"))
}

func TestNormalizeQuestion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "do you ship internationally", normalizeQuestion("  Do you  ship internationally?  "))
	assert.Equal(t, normalizeQuestion("Do you ship internationally?"), normalizeQuestion("do you ship INTERNATIONALLY"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel", truncate("hello", 3))
	assert.Equal(t, "hél", truncate("héllo", 3), "truncation is rune safe")
}
