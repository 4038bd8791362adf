package entity

import "github.com/questx-lab/wizard/pkg/enum"

type Platform string

var (
	PlatformInstagram = enum.New(Platform("instagram"))
	PlatformTiktok    = enum.New(Platform("tiktok"))
	PlatformFacebook  = enum.New(Platform("facebook"))
	PlatformYoutube   = enum.New(Platform("youtube"))
	PlatformLinkedin  = enum.New(Platform("linkedin"))
	PlatformWebsite   = enum.New(Platform("website"))
	PlatformTwitter   = enum.New(Platform("twitter"))
	PlatformDiscord   = enum.New(Platform("discord"))
	PlatformBehance   = enum.New(Platform("behance"))
	PlatformGithub    = enum.New(Platform("github"))
)

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	return enum.Values[Platform]()
}
