// Package syncurl rewrites slide-deck URLs so that a slideset opened
// from chat points back at the channel's sync server.
package syncurl

import "strings"

// MapChannel turns an IRC channel name into a path-safe identifier:
// the leading sigil '#' becomes '0' and '&' becomes '1'. Anything else
// passes through unchanged.
func MapChannel(channel string) string {
	switch {
	case strings.HasPrefix(channel, "#"):
		return "0" + channel[1:]
	case strings.HasPrefix(channel, "&"):
		return "1" + channel[1:]
	}
	return channel
}

// Compose merges a sync parameter into a slide-deck URL. The sync
// endpoint and channel are deliberately not URL-escaped: the sync
// server expects the endpoint URL verbatim inside the parameter.
func Compose(slidesURL, endpoint, channel string) string {
	base := slidesURL
	fragment := ""
	if i := strings.Index(base, "#"); i >= 0 {
		base, fragment = base[:i], base[i:]
	}

	param := "sync=" + endpoint + "/" + MapChannel(channel)
	if strings.Contains(base, "?") {
		return base + "&" + param + fragment
	}
	return base + "?" + param + fragment
}
