package goquery

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Ensure FAQParser implements storeinsights.FAQParser at compile time.
var _ storeinsights.FAQParser = (*FAQParser)(nil)

// FAQParser extracts question/answer pairs from FAQ-like pages. Strategies
// run in reliability order: JSON-LD FAQPage structured data, then
// accordion/details markup, then question-shaped headings followed by body
// text. Results keep document order; deduplication and capping belong to
// the caller.
type FAQParser struct{}

// NewFAQParser creates a new FAQParser.
func NewFAQParser() *FAQParser {
	return &FAQParser{}
}

// minAnswerLength filters out markup artifacts masquerading as answers.
const minAnswerLength = 10

// ParseFAQs parses question/answer pairs from the page HTML.
func (p *FAQParser) ParseFAQs(html string) []storeinsights.FAQ {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	if faqs := p.parseJSONLD(doc); len(faqs) > 0 {
		return faqs
	}
	if faqs := p.parseAccordions(doc); len(faqs) > 0 {
		return faqs
	}
	return p.parseHeadingPairs(doc)
}

// ldNode is the subset of schema.org FAQPage structure the parser reads.
type ldNode struct {
	Type       string `json:"@type"`
	MainEntity []struct {
		Name           string `json:"name"`
		Headline       string `json:"headline"`
		AcceptedAnswer struct {
			Text string `json:"text"`
		} `json:"acceptedAnswer"`
	} `json:"mainEntity"`
}

// parseJSONLD reads schema.org FAQPage blocks. Stores that care about
// search snippets emit these, and they are authoritative when present.
func (p *FAQParser) parseJSONLD(doc *goquery.Document) []storeinsights.FAQ {
	var faqs []storeinsights.FAQ

	doc.Find("script[type='application/ld+json']").Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}

		var nodes []ldNode
		if strings.HasPrefix(raw, "[") {
			if err := json.Unmarshal([]byte(raw), &nodes); err != nil {
				return
			}
		} else {
			var node ldNode
			if err := json.Unmarshal([]byte(raw), &node); err != nil {
				return
			}
			nodes = []ldNode{node}
		}

		for _, node := range nodes {
			if node.Type != "FAQPage" {
				continue
			}
			for _, item := range node.MainEntity {
				question := item.Name
				if question == "" {
					question = item.Headline
				}
				answer := stripTags(item.AcceptedAnswer.Text)
				if question != "" && len(answer) >= minAnswerLength {
					faqs = append(faqs, storeinsights.FAQ{
						Question: squeeze(question),
						Answer:   answer,
					})
				}
			}
		}
	})

	return faqs
}

// parseAccordions handles <details>/<summary> elements and accordion-class
// containers, the two markup shapes storefront themes use for FAQs.
func (p *FAQParser) parseAccordions(doc *goquery.Document) []storeinsights.FAQ {
	var faqs []storeinsights.FAQ

	doc.Find("details").Each(func(_ int, sel *goquery.Selection) {
		summary := sel.Find("summary").First()
		question := squeeze(summary.Text())

		content := sel.Clone()
		content.Find("summary").Remove()
		answer := squeeze(content.Text())

		if question != "" && len(answer) >= minAnswerLength {
			faqs = append(faqs, storeinsights.FAQ{Question: question, Answer: answer})
		}
	})

	doc.Find("[class*='accordion'], [class*='faq-item'], [class*='collapsible']").Each(func(_ int, sel *goquery.Selection) {
		// Skip containers whose children were already captured as
		// <details> elements above.
		if sel.Find("details").Length() > 0 {
			return
		}

		questionEl := sel.Find("h2, h3, h4, h5, h6, button, [class*='question']").First()
		question := squeeze(questionEl.Text())
		if question == "" {
			return
		}

		answerEl := sel.Find("[class*='answer'], [class*='content'], [class*='panel']").First()
		if answerEl.Length() == 0 {
			answerEl = questionEl.Next()
		}
		answer := squeeze(answerEl.Text())

		if strings.Contains(question, "?") && len(answer) >= minAnswerLength {
			faqs = append(faqs, storeinsights.FAQ{Question: question, Answer: answer})
		}
	})

	return faqs
}

// parseHeadingPairs falls back to question-shaped headings followed by
// their body block.
func (p *FAQParser) parseHeadingPairs(doc *goquery.Document) []storeinsights.FAQ {
	var faqs []storeinsights.FAQ

	doc.Find("h2, h3, h4, h5").Each(func(_ int, sel *goquery.Selection) {
		question := squeeze(sel.Text())
		if !strings.HasSuffix(question, "?") {
			return
		}

		answer := squeeze(sel.Next().Text())
		if len(answer) >= minAnswerLength {
			faqs = append(faqs, storeinsights.FAQ{Question: question, Answer: answer})
		}
	})

	return faqs
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags removes markup from an HTML fragment and collapses whitespace.
// JSON-LD answers frequently embed formatting tags.
func stripTags(html string) string {
	return squeeze(tagPattern.ReplaceAllString(html, " "))
}
