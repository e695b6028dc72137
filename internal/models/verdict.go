package models

// Category is the classifier's verdict on where a piece of media came from.
type Category string

const (
	CategoryReal        Category = "real"
	CategoryAIGenerated Category = "ai-generated"
	CategoryAnimated    Category = "animated"
	// CategoryUnknown is only used by the demo page when the request failed.
	CategoryUnknown Category = "unknown"
)

// Accident subtypes attached to verdicts classified as real.
const (
	AccidentVehicleCollision = "vehicle-collision"
	AccidentFire             = "fire-accident"
	AccidentElectricalHazard = "electrical-hazard"
	AccidentStructuralDamage = "structural-damage"
	AccidentMultiVehicle     = "multi-vehicle"

	// AccidentUnknown is reported whenever no subtype applies.
	AccidentUnknown = "Unknown"
)

// PassThreshold is the minimum confidence for a verdict to be acted upon.
const PassThreshold = 30

// Verdict is the classification result for one submitted file.
type Verdict struct {
	Category     Category
	Confidence   int
	Details      string
	AccidentType string
}

// Passed reports whether the verdict clears PassThreshold.
// Only the confidence is checked; the category plays no part.
func (v Verdict) Passed() bool {
	return v.Confidence >= PassThreshold
}

// AnalysisResponse is the JSON body returned by the analysis endpoint.
type AnalysisResponse struct {
	Type         Category `json:"type"`
	Confidence   int      `json:"confidence"`
	Passed       bool     `json:"passed"`
	Details      string   `json:"details"`
	AccidentType string   `json:"accidentType"`
}

// NewAnalysisResponse builds the wire form of a verdict.
func NewAnalysisResponse(v Verdict) AnalysisResponse {
	return AnalysisResponse{
		Type:         v.Category,
		Confidence:   v.Confidence,
		Passed:       v.Passed(),
		Details:      v.Details,
		AccidentType: v.AccidentType,
	}
}
