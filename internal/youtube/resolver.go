package youtube

import "regexp"

// videoIDPattern matches the 11-character video ID in either a watch URL
// (v=<id> query parameter) or a youtu.be short link path.
var videoIDPattern = regexp.MustCompile(`(?:v=|youtu\.be/)([A-Za-z0-9_-]{11})`)

// ExtractVideoID extracts a video ID from a user-supplied URL string.
// It performs no network access; the second return is false when the
// string carries no recognizable ID.
func ExtractVideoID(rawURL string) (string, bool) {
	match := videoIDPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", false
	}
	return match[1], true
}
