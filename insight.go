package storeinsights

// ContactDetails holds contact information mined from a storefront's pages.
// Emails and phone numbers are deduplicated in order of first appearance.
type ContactDetails struct {
	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phoneNumbers"`
	Address      string   `json:"address,omitempty"`
}

// Empty reports whether no contact information was found.
func (c ContactDetails) Empty() bool {
	return len(c.Emails) == 0 && len(c.PhoneNumbers) == 0 && c.Address == ""
}

// SocialPlatform identifies a social network in the fixed set of platforms
// the social miner recognizes.
type SocialPlatform string

// Recognized social platforms. Twitter and X map to the same key.
const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformYouTube   SocialPlatform = "youtube"
	PlatformPinterest SocialPlatform = "pinterest"
	PlatformLinkedIn  SocialPlatform = "linkedin"
)

// SocialPlatforms lists all recognized platforms in stable order.
func SocialPlatforms() []SocialPlatform {
	return []SocialPlatform{
		PlatformInstagram,
		PlatformFacebook,
		PlatformTwitter,
		PlatformTikTok,
		PlatformYouTube,
		PlatformPinterest,
		PlatformLinkedIn,
	}
}

// SocialHandles maps a platform to its profile URL. Platforms without a
// discovered profile are absent from the map, never present with an empty
// value.
type SocialHandles map[SocialPlatform]string

// PolicyKind identifies a storefront policy in the fixed set of kinds the
// policy miner recognizes.
type PolicyKind string

// Recognized policy kinds.
const (
	PolicyPrivacy  PolicyKind = "privacy"
	PolicyRefund   PolicyKind = "refund"
	PolicyTerms    PolicyKind = "terms"
	PolicyShipping PolicyKind = "shipping"
)

// PolicyKinds lists all recognized policy kinds in stable order.
func PolicyKinds() []PolicyKind {
	return []PolicyKind{PolicyPrivacy, PolicyRefund, PolicyTerms, PolicyShipping}
}

// PolicySet maps a policy kind to its extracted text body. Kinds with no
// discovered page are absent from the map.
type PolicySet map[PolicyKind]string

// FAQ is a single question/answer pair mined from a FAQ-like page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// LinkPurpose classifies an important navigational link.
type LinkPurpose string

// Recognized link purposes.
const (
	LinkOrderTracking LinkPurpose = "order_tracking"
	LinkContactUs     LinkPurpose = "contact_us"
	LinkBlog          LinkPurpose = "blog"
	LinkSizeGuide     LinkPurpose = "size_guide"
	LinkCareers       LinkPurpose = "careers"
	LinkAboutUs       LinkPurpose = "about_us"
	LinkFAQ           LinkPurpose = "faq"
)

// LinkPurposes lists all recognized link purposes in stable order.
func LinkPurposes() []LinkPurpose {
	return []LinkPurpose{
		LinkOrderTracking,
		LinkContactUs,
		LinkBlog,
		LinkSizeGuide,
		LinkCareers,
		LinkAboutUs,
		LinkFAQ,
	}
}

// ImportantLinks maps a link purpose to its URL. Purposes with no discovered
// link are absent from the map.
type ImportantLinks map[LinkPurpose]string
