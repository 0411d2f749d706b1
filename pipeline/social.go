package pipeline

import (
	"net/url"
	"strings"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// socialHosts maps each platform to the hostnames its profile links use.
// Twitter and X collapse to the same platform key.
var socialHosts = map[storeinsights.SocialPlatform][]string{
	storeinsights.PlatformInstagram: {"instagram.com", "instagr.am"},
	storeinsights.PlatformFacebook:  {"facebook.com", "fb.com"},
	storeinsights.PlatformTwitter:   {"twitter.com", "x.com"},
	storeinsights.PlatformTikTok:    {"tiktok.com"},
	storeinsights.PlatformYouTube:   {"youtube.com", "youtu.be"},
	storeinsights.PlatformPinterest: {"pinterest.com"},
	storeinsights.PlatformLinkedIn:  {"linkedin.com"},
}

// mineSocial maps anchor URLs onto recognized social platforms. The first
// profile URL per platform wins; tracking query strings and fragments are
// stripped.
func mineSocial(links []storeinsights.Link) storeinsights.SocialHandles {
	handles := storeinsights.SocialHandles{}
	for _, link := range links {
		platform, ok := socialPlatformFor(link.URL)
		if !ok {
			continue
		}
		if _, taken := handles[platform]; taken {
			continue
		}
		handles[platform] = stripTracking(link.URL)
	}
	return handles
}

func socialPlatformFor(rawURL string) (storeinsights.SocialPlatform, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))

	for _, platform := range storeinsights.SocialPlatforms() {
		for _, h := range socialHosts[platform] {
			if host == h || strings.HasSuffix(host, "."+h) {
				// A bare platform root is not a profile link.
				if strings.Trim(u.Path, "/") == "" {
					continue
				}
				return platform, true
			}
		}
	}
	return "", false
}

func stripTracking(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
