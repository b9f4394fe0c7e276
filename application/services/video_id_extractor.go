package services

import (
	"regexp"
	"seo-blog-generator/domain"
)

var videoIDRegexp = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID returns the first 11-character id following "v=" or "/".
func ExtractVideoID(videoURL string) (string, error) {
	match := videoIDRegexp.FindStringSubmatch(videoURL)
	if match == nil {
		return "", domain.NewValidationError(domain.VideoIDNotFoundMessage)
	}
	return match[1], nil
}
