package inspect

import (
	"bytes"
	"fmt"

	"github.com/bep/imagemeta"
)

// Metadata holds the EXIF fields worth showing next to an accident photo.
type Metadata struct {
	Make      string `json:"make,omitempty"`
	Model     string `json:"model,omitempty"`
	Software  string `json:"software,omitempty"`
	DateTime  string `json:"dateTime,omitempty"`
	Artist    string `json:"artist,omitempty"`
	Copyright string `json:"copyright,omitempty"`
}

var exifTags = map[string]bool{
	"Make":             true,
	"Model":            true,
	"Software":         true,
	"DateTimeOriginal": true,
	"Artist":           true,
	"Copyright":        true,
}

var imageFormats = map[string]imagemeta.ImageFormat{
	"image/jpeg": imagemeta.JPEG,
	"image/png":  imagemeta.PNG,
	"image/webp": imagemeta.WebP,
	"image/tiff": imagemeta.TIFF,
}

// ExtractMetadata parses EXIF from raw image bytes of the given MIME type.
// Returns nil when the format is unsupported or no wanted tag is present.
func ExtractMetadata(mimeType string, data []byte) (meta *Metadata) {
	format, ok := imageFormats[mimeType]
	if !ok || len(data) == 0 {
		return nil
	}

	// Malformed uploads must not take the request down.
	defer func() {
		if r := recover(); r != nil {
			meta = nil
		}
	}()

	m := &Metadata{}
	found := false

	_, err := imagemeta.Decode(imagemeta.Options{
		R:           bytes.NewReader(data),
		ImageFormat: format,
		Sources:     imagemeta.EXIF,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			return exifTags[ti.Tag]
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			s := tagString(ti.Value)
			if s == "" {
				return nil
			}
			switch ti.Tag {
			case "Make":
				m.Make = s
			case "Model":
				m.Model = s
			case "Software":
				m.Software = s
			case "DateTimeOriginal":
				m.DateTime = s
			case "Artist":
				m.Artist = s
			case "Copyright":
				m.Copyright = s
			default:
				return nil
			}
			found = true
			return nil
		},
	})
	if err != nil || !found {
		return nil
	}
	return m
}

func tagString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
		return ""
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
