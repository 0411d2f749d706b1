package readability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/readability"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, storeinsights.EINVALID, storeinsights.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Refund Policy</title></head>
<body><article><p>Returns are accepted within 30 days.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Refund Policy", result.Title)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Shipping Policy</title></head>
<body>
<nav><a href="/collections/all">Shop All Nav Link</a><a href="/cart">Cart Nav Link</a></nav>
<article><p>We ship all orders within two business days from our warehouse.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Shop All Nav Link")
	assert.NotContains(t, result.ContentHTML, "Cart Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>About Us</title></head>
<body>
<article><p>We started this store in a garage with one sewing machine and a big idea.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_KeepsMainPolicyContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Privacy Policy</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article><p>We collect only the personal information needed to fulfil your order.</p></article>
<footer><p>Footer</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "personal information needed to fulfil your order")
}

func TestExtractor_PreservesHeadings(t *testing.T) {
	t.Parallel()

	// go-readability may demote h1 to h2, but heading text is preserved
	html := `<!DOCTYPE html>
<html>
<head><title>Terms of Service</title></head>
<body>
<article>
<h1>Terms of Service</h1>
<p>These terms govern your use of the store.</p>
<h2>Returns and Exchanges</h2>
<p>Unworn items may be returned within 30 days for a full refund.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Returns and Exchanges")
	assert.Contains(t, result.ContentHTML, "<h2")
}

func TestExtractor_PreservesLists(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Shipping Policy</title></head>
<body>
<article>
<p>Shipping options:</p>
<ul>
<li>Standard, 5 to 7 business days</li>
<li>Express, 1 to 2 business days</li>
</ul>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<ul")
	assert.Contains(t, result.ContentHTML, "<li")
}

func TestExtractor_PreservesTables(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Shipping Policy</title></head>
<body>
<article>
<p>Delivery estimates by region:</p>
<table>
<tr><th>Region</th><th>Days</th></tr>
<tr><td>Domestic</td><td>3</td></tr>
</table>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<table")
}
