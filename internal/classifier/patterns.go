package classifier

import "strings"

// StockImagePatterns are file-name substrings of web-sourced or stock images.
var StockImagePatterns = []string{
	"unsplash", "pexels", "pixabay", "stock", "free-download",
	"shutterstock", "getty", "dreamstime", "istock",
}

// GenericImageNames are default names given by browsers and download tools.
var GenericImageNames = []string{
	"image.jpg", "image.png", "photo.jpg", "photo.png", "screenshot.png",
}

// AIImagePatterns mark images produced by generative models.
var AIImagePatterns = []string{
	"ai_", "generated", "deepfake", "synthesized", "render", "cgi",
	"dall-e", "midjourney", "stable", "ai-generated", "synthetic", "fake",
}

// AnimatedImagePatterns mark cartoons and illustrations.
var AnimatedImagePatterns = []string{"cartoon", "animated", "anime"}

// ImageAccidentKeywords must appear in an image name for it to be accepted.
var ImageAccidentKeywords = []string{
	"accident", "crash", "collision", "emergency", "incident", "damage",
	"fire", "emergency scene", "car accident", "road accident", "vehicle", "scene",
}

// FakeVideoPatterns mark deepfake video.
var FakeVideoPatterns = []string{"deepfake", "fake"}

// AnimatedVideoPatterns mark CGI and animation.
var AnimatedVideoPatterns = []string{"animated", "cgi", "render"}

// SyntheticAudioPatterns mark text-to-speech and generated voices.
var SyntheticAudioPatterns = []string{
	"tts", "text-to-speech", "synthetic", "generated_voice", "robot", "computer", "ai_voice",
}

// AudioAccidentKeywords must appear in an audio name for it to be accepted.
var AudioAccidentKeywords = []string{
	"accident", "crash", "collision", "emergency", "help", "911", "call",
	"hit", "impact", "injured", "ambulance", "police", "fire", "danger",
	"urgent", "see", "there's", "been", "need",
}

// containsAny reports whether lower contains any of patterns.
func containsAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// equalsAny reports whether lower equals any of names.
func equalsAny(lower string, names []string) bool {
	for _, n := range names {
		if lower == n {
			return true
		}
	}
	return false
}
