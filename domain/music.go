package domain

import "regexp"

// Matches the two shapes users actually paste: a full watch URL and the short
// share URL. Video IDs are always 11 characters.
var youtubeIDRe = regexp.MustCompile(`(?:youtube\.com/.*v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// YouTubeEmbedURL resolves a shared music link to an embeddable player URL.
// Links that don't match a known YouTube shape return ok=false and are
// rendered as plain outbound links by the caller.
func YouTubeEmbedURL(link string) (string, bool) {
	m := youtubeIDRe.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return "https://www.youtube.com/embed/" + m[1], true
}
