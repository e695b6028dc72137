package models

// Language is a selectable UI language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultLanguage is used when the session has no stored language.
const DefaultLanguage = "en"

// Languages lists the supported UI languages in display order.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "हिंदी (Hindi)"},
	{Code: "ta", Name: "தமிழ் (Tamil)"},
	{Code: "te", Name: "తెలుగు (Telugu)"},
	{Code: "kn", Name: "ಕನ್ನಡ (Kannada)"},
	{Code: "ml", Name: "മലയാളം (Malayalam)"},
	{Code: "mr", Name: "मराठी (Marathi)"},
	{Code: "gu", Name: "ગુજરાતી (Gujarati)"},
	{Code: "bn", Name: "বাংলা (Bengali)"},
	{Code: "pa", Name: "ਪੰਜਾਬੀ (Punjabi)"},
	{Code: "or", Name: "ଓଡିଆ (Odia)"},
	{Code: "as", Name: "অসমীয়া (Assamese)"},
}

// LanguageName returns the display name for code and whether it is supported.
func LanguageName(code string) (string, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

// Preferences are the per-session display settings.
type Preferences struct {
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	Language     string     `json:"language"`
	LanguageName string     `json:"languageName"`
	DarkMode     bool       `json:"darkMode"`
	Languages    []Language `json:"languages"`
}
