package storeinsights

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrorCategory tags an extraction error with the pipeline stage or data
// category it originated from. Only ErrNotDetected is fatal; every other
// category records a partial result without aborting sibling extractors.
type ErrorCategory string

// Extraction error categories, in pipeline stage order.
const (
	ErrNotDetected      ErrorCategory = "NOT_DETECTED"
	ErrPartialCatalog   ErrorCategory = "PARTIAL_CATALOG"
	ErrHeroUnmatched    ErrorCategory = "HERO_UNMATCHED"
	ErrContactEmpty     ErrorCategory = "CONTACT_EMPTY"
	ErrSocialEmpty      ErrorCategory = "SOCIAL_EMPTY"
	ErrPolicyMissing    ErrorCategory = "POLICY_MISSING"
	ErrFAQEmpty         ErrorCategory = "FAQ_EMPTY"
	ErrBrandEmpty       ErrorCategory = "BRAND_EMPTY"
	ErrTimeout          ErrorCategory = "TIMEOUT"
	ErrTransportFailure ErrorCategory = "TRANSPORT_FAILURE"
)

// ExtractionError is a single entry in a report's error list.
type ExtractionError struct {
	// Category tags the originating data category or stage.
	Category ErrorCategory `json:"category"`

	// Detail qualifies parameterized categories, e.g. the policy kind for
	// POLICY_MISSING or the stage name for TIMEOUT.
	Detail string `json:"detail,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// Tag returns the canonical category tag, including the detail qualifier
// when present, e.g. "POLICY_MISSING:shipping".
func (e ExtractionError) Tag() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s:%s", e.Category, e.Detail)
	}
	return string(e.Category)
}

// InsightsReport is the aggregate result of one pipeline invocation. It is
// assembled once and never mutated afterwards; no report state outlives the
// request that produced it.
type InsightsReport struct {
	Target            string            `json:"target"`
	BrandName         string            `json:"brandName"`
	ProductCatalog    []Product         `json:"productCatalog"`
	HeroProducts      []HeroProduct     `json:"heroProducts"`
	ContactDetails    ContactDetails    `json:"contactDetails"`
	SocialHandles     SocialHandles     `json:"socialHandles"`
	Policies          PolicySet         `json:"policies"`
	FAQs              []FAQ             `json:"faqs"`
	BrandContext      string            `json:"brandContext"`
	ImportantLinks    ImportantLinks    `json:"importantLinks"`
	TotalProducts     int               `json:"totalProducts"`
	ExtractedAt       time.Time         `json:"extractedAt"`
	ExtractionSuccess bool              `json:"extractionSuccess"`
	Errors            []ExtractionError `json:"errors"`

	// ContentHash is a hash of the report body excluding ExtractedAt.
	// Two runs against the same static snapshot of a target produce the
	// same hash.
	ContentHash string `json:"contentHash"`
}

// EnsureDefaults replaces nil collections with empty ones so a marshaled
// report carries explicit empty lists and objects instead of null.
func (r *InsightsReport) EnsureDefaults() {
	if r.ProductCatalog == nil {
		r.ProductCatalog = []Product{}
	}
	if r.HeroProducts == nil {
		r.HeroProducts = []HeroProduct{}
	}
	if r.FAQs == nil {
		r.FAQs = []FAQ{}
	}
	if r.Errors == nil {
		r.Errors = []ExtractionError{}
	}
	if r.ContactDetails.Emails == nil {
		r.ContactDetails.Emails = []string{}
	}
	if r.ContactDetails.PhoneNumbers == nil {
		r.ContactDetails.PhoneNumbers = []string{}
	}
	if r.SocialHandles == nil {
		r.SocialHandles = SocialHandles{}
	}
	if r.Policies == nil {
		r.Policies = PolicySet{}
	}
	if r.ImportantLinks == nil {
		r.ImportantLinks = ImportantLinks{}
	}
}

// ComputeContentHash hashes the report body, ignoring ExtractedAt and any
// previously computed hash.
func (r *InsightsReport) ComputeContentHash() string {
	shadow := *r
	shadow.ExtractedAt = time.Time{}
	shadow.ContentHash = ""

	// Maps serialize with sorted keys, so the encoding is deterministic.
	body, err := json.Marshal(&shadow)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(body))
}

// HasError reports whether the report's error list contains the category.
func (r *InsightsReport) HasError(category ErrorCategory) bool {
	for _, e := range r.Errors {
		if e.Category == category {
			return true
		}
	}
	return false
}
