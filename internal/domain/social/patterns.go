package social

import (
	"fmt"
	"regexp"

	"github.com/questx-lab/wizard/internal/entity"
)

const (
	urlPrefix = `(?i)^(https?://)?(www\.)?`
	// Pasted profile links often carry a query or fragment.
	urlSuffix = `/?([?#]\S*)?$`
)

type pattern struct {
	handle *regexp.Regexp // nil when the platform has no handle form
	url    *regexp.Regexp
}

func handlePattern(maxLen int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^@?[A-Za-z0-9._-]{1,%d}$`, maxLen))
}

func urlPattern(domainAndPath string) *regexp.Regexp {
	return regexp.MustCompile(urlPrefix + domainAndPath + urlSuffix)
}

// The patterns are a typing aid. They are loose on purpose and are not the
// backend's validation rules.
var patterns = map[entity.Platform]pattern{
	entity.PlatformInstagram: {
		handle: handlePattern(30),
		url:    urlPattern(`instagram\.com/[A-Za-z0-9._]{1,30}`),
	},
	entity.PlatformTiktok: {
		handle: handlePattern(24),
		url:    urlPattern(`tiktok\.com/@[A-Za-z0-9._]{1,24}`),
	},
	entity.PlatformFacebook: {
		handle: handlePattern(50),
		url:    urlPattern(`(facebook|fb)\.com/[A-Za-z0-9.\-]{1,50}`),
	},
	entity.PlatformYoutube: {
		handle: handlePattern(30),
		url:    urlPattern(`youtube\.com/(@|c/|channel/|user/)?[A-Za-z0-9._\-]{1,100}`),
	},
	entity.PlatformLinkedin: {
		handle: handlePattern(100),
		url:    urlPattern(`linkedin\.com/(in|company|school)/[A-Za-z0-9_\-%]{1,100}`),
	},
	entity.PlatformWebsite: {
		url: regexp.MustCompile(`(?i)^(https?://)?([A-Za-z0-9-]+\.)+[A-Za-z]{2,}(:[0-9]{1,5})?([/?#]\S*)?$`),
	},
	entity.PlatformTwitter: {
		handle: handlePattern(15),
		url:    urlPattern(`(twitter|x)\.com/[A-Za-z0-9_]{1,15}`),
	},
	entity.PlatformDiscord: {
		url: urlPattern(`(discord\.gg|discord(app)?\.com/invite)/[A-Za-z0-9\-]{2,32}`),
	},
	entity.PlatformBehance: {
		handle: handlePattern(30),
		url:    urlPattern(`behance\.net/[A-Za-z0-9._\-]{1,30}`),
	},
	entity.PlatformGithub: {
		handle: handlePattern(39),
		url:    urlPattern(`github\.com/[A-Za-z0-9\-]{1,39}`),
	},
}
