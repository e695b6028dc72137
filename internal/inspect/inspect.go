// Package inspect extracts informational facts from uploaded media bytes.
// Nothing here feeds the classifier; reports are logged and returned to
// callers that ask for them.
package inspect

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/corona10/goimagehash"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

// MaxDecodePixels caps width*height for full decoding. Larger images only
// report their dimensions.
const MaxDecodePixels = 40_000_000

// Report describes one uploaded file.
type Report struct {
	FileName       string    `json:"fileName"`
	Size           int       `json:"size"`
	MD5            string    `json:"md5"`
	DeclaredMIME   string    `json:"declaredMime"`
	SniffedMIME    string    `json:"sniffedMime"`
	MIMEMismatch   bool      `json:"mimeMismatch"`
	Width          int       `json:"width,omitempty"`
	Height         int       `json:"height,omitempty"`
	PerceptualHash string    `json:"perceptualHash,omitempty"`
	Metadata       *Metadata `json:"metadata,omitempty"`
}

// Inspect builds a Report. It never fails: facts that cannot be extracted
// are left empty.
func Inspect(fileName, declaredMIME string, data []byte) Report {
	sum := md5.Sum(data)
	sniffed := mimetype.Detect(data)

	r := Report{
		FileName:     fileName,
		Size:         len(data),
		MD5:          hex.EncodeToString(sum[:]),
		DeclaredMIME: declaredMIME,
		SniffedMIME:  sniffed.String(),
	}
	r.MIMEMismatch = declaredMIME != "" && !sniffed.Is(baseMIME(declaredMIME))

	if !strings.HasPrefix(sniffed.String(), "image/") {
		return r
	}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		r.Width, r.Height = cfg.Width, cfg.Height
		r.PerceptualHash = perceptualHash(data, cfg)
	}

	r.Metadata = ExtractMetadata(sniffed.String(), data)
	return r
}

// perceptualHash decodes the image and returns its dHash, or "" when the
// header declares more than MaxDecodePixels. Decoded size follows the header,
// not the upload size.
func perceptualHash(data []byte, cfg image.Config) string {
	if int64(cfg.Width)*int64(cfg.Height) > MaxDecodePixels {
		return ""
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return ""
	}
	return hash.ToString()
}

// baseMIME strips parameters such as "; codecs=opus".
func baseMIME(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = m[:i]
	}
	return strings.TrimSpace(strings.ToLower(m))
}
