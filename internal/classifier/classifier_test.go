package classifier

import (
	"slices"
	"testing"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

func TestClassifyKeywordVerdicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mime       string
		file       string
		category   models.Category
		confidence int
	}{
		// Images.
		{name: "stock token", mime: "image/jpeg", file: "pexels-car-crash.jpg", category: models.CategoryAIGenerated, confidence: 96},
		{name: "shutterstock token", mime: "image/jpeg", file: "shutterstock_123.jpg", category: models.CategoryAIGenerated, confidence: 96},
		{name: "generic browser name", mime: "image/png", file: "screenshot.png", category: models.CategoryAIGenerated, confidence: 96},
		{name: "generic name upper case", mime: "image/jpeg", file: "IMAGE.JPG", category: models.CategoryAIGenerated, confidence: 96},
		{name: "ai token", mime: "image/png", file: "ai_generated_scene.png", category: models.CategoryAIGenerated, confidence: 98},
		{name: "midjourney token", mime: "image/png", file: "midjourney_crash.png", category: models.CategoryAIGenerated, confidence: 98},
		{name: "stock wins over ai", mime: "image/png", file: "stock_fake.png", category: models.CategoryAIGenerated, confidence: 96},
		{name: "cartoon", mime: "image/png", file: "cartoon_crash.png", category: models.CategoryAnimated, confidence: 97},
		{name: "no accident keyword", mime: "image/jpeg", file: "holiday.jpg", category: models.CategoryReal, confidence: 15},

		// Video.
		{name: "deepfake video", mime: "video/mp4", file: "deepfake_crash.mp4", category: models.CategoryAIGenerated, confidence: 97},
		{name: "fake video", mime: "video/mp4", file: "fake.mp4", category: models.CategoryAIGenerated, confidence: 97},
		{name: "cgi video", mime: "video/mp4", file: "cgi_scene.mp4", category: models.CategoryAnimated, confidence: 96},
		{name: "render video", mime: "video/webm", file: "render_01.webm", category: models.CategoryAnimated, confidence: 96},

		// Audio.
		{name: "tts audio", mime: "audio/mpeg", file: "tts_output.mp3", category: models.CategoryAIGenerated, confidence: 98},
		{name: "synthetic wins over keywords", mime: "audio/wav", file: "robot_emergency_crash_help.wav", category: models.CategoryAIGenerated, confidence: 98},
		{name: "audio without keyword", mime: "audio/webm", file: "recording.webm", category: models.CategoryReal, confidence: 18},

		// Anything else.
		{name: "pdf", mime: "application/pdf", file: "accident_report.pdf", category: models.CategoryReal, confidence: 35},
		{name: "empty mime", mime: "", file: "car_crash.jpg", category: models.CategoryReal, confidence: 35},
	}

	c := New(FixedSource(0))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := c.Classify(Submission{MIMEType: tc.mime, FileName: tc.file})
			if v.Category != tc.category {
				t.Errorf("Classify(%q, %q).Category = %q, want %q", tc.mime, tc.file, v.Category, tc.category)
			}
			if v.Confidence != tc.confidence {
				t.Errorf("Classify(%q, %q).Confidence = %d, want %d", tc.mime, tc.file, v.Confidence, tc.confidence)
			}
			if v.AccidentType != models.AccidentUnknown {
				t.Errorf("Classify(%q, %q).AccidentType = %q, want %q", tc.mime, tc.file, v.AccidentType, models.AccidentUnknown)
			}
			if v.Details == "" {
				t.Error("Details is empty")
			}
		})
	}
}

func TestClassifyDrawnVerdicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mime        string
		file        string
		confidences []int
		subtypes    []string
	}{
		{name: "accident image", mime: "image/jpeg", file: "car_crash.jpg", confidences: realImageConfidence, subtypes: imageAccidentTypes},
		{name: "accident video", mime: "video/mp4", file: "dashcam.mp4", confidences: realVideoConfidence, subtypes: imageAccidentTypes},
		{name: "emergency audio", mime: "audio/mpeg", file: "call_911_help.mp3", confidences: realAudioConfidence, subtypes: audioAccidentTypes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 5; i++ {
				v := New(FixedSource(i)).Classify(Submission{MIMEType: tc.mime, FileName: tc.file})
				if v.Category != models.CategoryReal {
					t.Fatalf("source %d: Category = %q, want real", i, v.Category)
				}
				if !slices.Contains(tc.confidences, v.Confidence) {
					t.Errorf("source %d: Confidence = %d, want one of %v", i, v.Confidence, tc.confidences)
				}
				if !slices.Contains(tc.subtypes, v.AccidentType) {
					t.Errorf("source %d: AccidentType = %q, want one of %v", i, v.AccidentType, tc.subtypes)
				}
				if !v.Passed() {
					t.Errorf("source %d: Passed() = false for confidence %d", i, v.Confidence)
				}
			}
		})
	}
}

func TestClassifyPinnedSource(t *testing.T) {
	t.Parallel()

	v := New(FixedSource(2)).Classify(Submission{MIMEType: "image/jpeg", FileName: "car_crash.jpg"})
	if v.Confidence != 75 {
		t.Errorf("Confidence = %d, want 75", v.Confidence)
	}
	if v.AccidentType != models.AccidentElectricalHazard {
		t.Errorf("AccidentType = %q, want %q", v.AccidentType, models.AccidentElectricalHazard)
	}

	// Audio has only four subtypes; an out-of-range index clamps to the last one.
	v = New(FixedSource(4)).Classify(Submission{MIMEType: "audio/wav", FileName: "crash.wav"})
	if v.AccidentType != models.AccidentStructuralDamage {
		t.Errorf("AccidentType = %q, want %q", v.AccidentType, models.AccidentStructuralDamage)
	}
}

func TestPassedFollowsConfidence(t *testing.T) {
	t.Parallel()

	files := []struct{ mime, name string }{
		{"image/jpeg", "car_crash.jpg"},
		{"image/jpeg", "holiday.jpg"},
		{"image/png", "ai_generated_scene.png"},
		{"video/mp4", "fake.mp4"},
		{"audio/mpeg", "voice.mp3"},
		{"audio/mpeg", "tts.mp3"},
		{"text/plain", "notes.txt"},
	}

	for i := 0; i < 5; i++ {
		c := New(FixedSource(i))
		for _, f := range files {
			v := c.Classify(Submission{MIMEType: f.mime, FileName: f.name})
			if got, want := v.Passed(), v.Confidence >= models.PassThreshold; got != want {
				t.Errorf("%s: Passed() = %v with confidence %d", f.name, got, v.Confidence)
			}
		}
	}
}

func TestClassifyDefaultSource(t *testing.T) {
	t.Parallel()

	c := New(nil)
	for i := 0; i < 50; i++ {
		v := c.Classify(Submission{MIMEType: "video/mp4", FileName: "crash.mp4"})
		if !slices.Contains(realVideoConfidence, v.Confidence) {
			t.Fatalf("Confidence = %d, want one of %v", v.Confidence, realVideoConfidence)
		}
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mime string
		want MediaKind
	}{
		{"image/jpeg", KindImage},
		{"video/quicktime", KindVideo},
		{"audio/ogg", KindAudio},
		{"application/octet-stream", KindUnknown},
		{"", KindUnknown},
		{"IMAGE/JPEG", KindUnknown},
	}
	for _, tc := range tests {
		if got := KindOf(tc.mime); got != tc.want {
			t.Errorf("KindOf(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}
