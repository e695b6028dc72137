// Package classifier implements the mock accident-media classification.
//
// Verdicts are decided by substrings of the file name. When nothing
// disqualifies the file, the confidence and accident subtype are drawn from
// fixed sets through an injectable Source. The file content is never read.
package classifier

import (
	"fmt"
	"strings"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

// Submission is one uploaded file.
type Submission struct {
	MIMEType string
	FileName string
	Data     []byte
}

// MediaKind is the broad type of a submission derived from its MIME type.
type MediaKind string

const (
	KindImage   MediaKind = "image"
	KindVideo   MediaKind = "video"
	KindAudio   MediaKind = "audio"
	KindUnknown MediaKind = "unknown"
)

// KindOf maps a MIME type to its MediaKind.
func KindOf(mimeType string) MediaKind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage
	case strings.HasPrefix(mimeType, "video/"):
		return KindVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return KindAudio
	default:
		return KindUnknown
	}
}

var (
	imageAccidentTypes = []string{
		models.AccidentVehicleCollision,
		models.AccidentFire,
		models.AccidentElectricalHazard,
		models.AccidentStructuralDamage,
		models.AccidentMultiVehicle,
	}
	audioAccidentTypes = []string{
		models.AccidentVehicleCollision,
		models.AccidentFire,
		models.AccidentElectricalHazard,
		models.AccidentStructuralDamage,
	}

	realImageConfidence = []int{72, 68, 75, 70, 65}
	realVideoConfidence = []int{78, 82, 75, 84, 80}
	realAudioConfidence = []int{88, 92, 85, 94, 89}
)

// Fixed confidences for keyword-decided verdicts.
const (
	ConfidenceStockImage      = 96
	ConfidenceAIImage         = 98
	ConfidenceAnimatedImage   = 97
	ConfidenceUnverifiedImage = 15
	ConfidenceFakeVideo       = 97
	ConfidenceAnimatedVideo   = 96
	ConfidenceSyntheticAudio  = 98
	ConfidenceNoKeywordAudio  = 18
	ConfidenceUnknownType     = 35
)

// Classifier produces verdicts for submissions.
type Classifier struct {
	src Source
}

// New returns a Classifier drawing canned values from src.
// A nil src uses DefaultSource.
func New(src Source) *Classifier {
	if src == nil {
		src = DefaultSource()
	}
	return &Classifier{src: src}
}

// Classify returns the verdict for sub. It has no side effects.
func (c *Classifier) Classify(sub Submission) models.Verdict {
	name := strings.ToLower(sub.FileName)

	switch KindOf(sub.MIMEType) {
	case KindImage:
		return c.classifyImage(name)
	case KindVideo:
		return c.classifyVideo(name)
	case KindAudio:
		return c.classifyAudio(name)
	default:
		return models.Verdict{
			Category:     models.CategoryReal,
			Confidence:   ConfidenceUnknownType,
			Details:      "File type unclear. Unable to perform detailed analysis. Please upload image, video, or audio file.",
			AccidentType: models.AccidentUnknown,
		}
	}
}

func (c *Classifier) classifyImage(name string) models.Verdict {
	if containsAny(name, StockImagePatterns) || equalsAny(name, GenericImageNames) {
		return models.Verdict{
			Category:     models.CategoryAIGenerated,
			Confidence:   ConfidenceStockImage,
			Details:      fmt.Sprintf("Image detected as web-sourced or stock photo (%s). This is not an authentic accident scene. Real accident reports require original, unmodified photos captured on-site.", name),
			AccidentType: models.AccidentUnknown,
		}
	}

	if containsAny(name, AIImagePatterns) {
		return models.Verdict{
			Category:     models.CategoryAIGenerated,
			Confidence:   ConfidenceAIImage,
			Details:      "Advanced detection identified synthetic generation markers consistent with AI models like DALL-E, Midjourney, or Stable Diffusion. Artifact analysis shows: interpolation patterns, unnatural reflections, inconsistent physics. Cannot accept AI-generated content for real accident reporting.",
			AccidentType: models.AccidentUnknown,
		}
	}

	if containsAny(name, AnimatedImagePatterns) {
		return models.Verdict{
			Category:     models.CategoryAnimated,
			Confidence:   ConfidenceAnimatedImage,
			Details:      "Image classification: Animated or cartoon content detected. This appears to be artistic rendering or animation rather than real-world accident footage. Authentic accident reports require photographs of actual incidents.",
			AccidentType: models.AccidentUnknown,
		}
	}

	if !containsAny(name, ImageAccidentKeywords) {
		return models.Verdict{
			Category:     models.CategoryReal,
			Confidence:   ConfidenceUnverifiedImage,
			Details:      `Image received but cannot verify as authentic accident scene. Filename lacks accident indicators. Real accident photos should have clear naming like "accident_scene.jpg", "car_crash.jpg", or "emergency_incident.jpg" and show actual accident scene damage, emergency personnel, or environmental context.`,
			AccidentType: models.AccidentUnknown,
		}
	}

	accidentType := pick(c.src, imageAccidentTypes)
	return models.Verdict{
		Category:     models.CategoryReal,
		Confidence:   pick(c.src, realImageConfidence),
		Details:      fmt.Sprintf(`Image analysis: Multi-modal detection confirms authentic accident scene of type "%s". Verified: natural lighting conditions, realistic material properties, authentic damage patterns, genuine perspective distortion. All authenticity markers present for real incident documentation.`, accidentType),
		AccidentType: accidentType,
	}
}

func (c *Classifier) classifyVideo(name string) models.Verdict {
	if containsAny(name, FakeVideoPatterns) {
		return models.Verdict{
			Category:     models.CategoryAIGenerated,
			Confidence:   ConfidenceFakeVideo,
			Details:      "Deepfake detection active: Frame-by-frame analysis reveals synthetic generation artifacts. Detected inconsistent facial tracking, unnatural motion blending, and temporal interpolation patterns typical of AI video synthesis. Cannot process fraudulent content.",
			AccidentType: models.AccidentUnknown,
		}
	}

	if containsAny(name, AnimatedVideoPatterns) {
		return models.Verdict{
			Category:     models.CategoryAnimated,
			Confidence:   ConfidenceAnimatedVideo,
			Details:      "Video classification: CGI/Animation detected through motion analysis. Identified: computer-generated lighting, perfect physics simulation, unrealistic texture consistency. Authentic accident videos must be captured with real devices.",
			AccidentType: models.AccidentUnknown,
		}
	}

	accidentType := pick(c.src, imageAccidentTypes)
	return models.Verdict{
		Category:     models.CategoryReal,
		Confidence:   pick(c.src, realVideoConfidence),
		Details:      fmt.Sprintf(`Video verification: Real-world footage confirmed as "%s". Analysis detected: natural motion blur, realistic frame artifacts, authentic audio-visual synchronization, genuine environmental variations. Real accident video accepted for processing.`, accidentType),
		AccidentType: accidentType,
	}
}

func (c *Classifier) classifyAudio(name string) models.Verdict {
	// Synthetic voice wins even when accident keywords are present.
	if containsAny(name, SyntheticAudioPatterns) {
		return models.Verdict{
			Category:     models.CategoryAIGenerated,
			Confidence:   ConfidenceSyntheticAudio,
			Details:      `Audio analysis: Text-to-speech or AI-generated voice detected. System identified synthetic speech patterns, unnatural prosody, missing emotional urgency typical of real emergency calls. Keyword detection: Missing critical accident-related phrases like "I see an accident", "There's been a crash", "Emergency help needed". Real emergency audio must contain authentic human urgency and specific incident details.`,
			AccidentType: models.AccidentUnknown,
		}
	}

	if !containsAny(name, AudioAccidentKeywords) {
		return models.Verdict{
			Category:     models.CategoryReal,
			Confidence:   ConfidenceNoKeywordAudio,
			Details:      `Audio content analysis: Human voice detected but critical accident keywords missing. Expected phrases: "I see an accident", "There's been a crash", "Emergency", "Call 911", "Help", "Collision", "Impact", "Injured", or similar emergency language. Audio confidence reduced due to lack of incident description. Please record clear audio describing the accident scene with emergency keywords.`,
			AccidentType: models.AccidentUnknown,
		}
	}

	accidentType := pick(c.src, audioAccidentTypes)
	return models.Verdict{
		Category:     models.CategoryReal,
		Confidence:   pick(c.src, realAudioConfidence),
		Details:      fmt.Sprintf(`Emergency audio verified: Human speaker with authentic urgency detected describing "%s". Keywords identified: Accident-related phrases present. Audio analysis shows: natural speech patterns, emotional authenticity, proper emergency language, detailed incident description. Real emergency report accepted.`, accidentType),
		AccidentType: accidentType,
	}
}
