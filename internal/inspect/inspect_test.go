package inspect

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int, fill func(x, y int) color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill(x, y))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func gradient(x, _ int) color.Color { return color.Gray{Y: uint8(x * 4)} }

func TestInspectPNG(t *testing.T) {
	t.Parallel()
	data := encodePNG(t, 64, 32, gradient)

	r := Inspect("crash.png", "image/png", data)

	if r.Size != len(data) {
		t.Errorf("Size = %d, want %d", r.Size, len(data))
	}
	if len(r.MD5) != 32 {
		t.Errorf("MD5 = %q, want 32 hex chars", r.MD5)
	}
	if r.SniffedMIME != "image/png" {
		t.Errorf("SniffedMIME = %q, want image/png", r.SniffedMIME)
	}
	if r.MIMEMismatch {
		t.Error("MIMEMismatch = true for matching type")
	}
	if r.Width != 64 || r.Height != 32 {
		t.Errorf("dimensions = %dx%d, want 64x32", r.Width, r.Height)
	}
	if r.PerceptualHash == "" {
		t.Error("PerceptualHash is empty")
	}
	if r.Metadata != nil {
		t.Errorf("Metadata = %+v, want nil for a bare PNG", r.Metadata)
	}
}

// blankGrayPNG streams a valid all-black grayscale PNG without holding the
// pixels in memory; the result compresses to a few kilobytes.
func blankGrayPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := func(typ string, data []byte) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(data)))
		buf.Write(n[:])
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		buf.WriteString(typ)
		buf.Write(data)
		binary.BigEndian.PutUint32(n[:], crc.Sum32())
		buf.Write(n[:])
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(h))
	ihdr[8] = 8 // bit depth; color type 0 (gray), no interlace
	chunk("IHDR", ihdr)

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestSpeed)
	if err != nil {
		t.Fatal(err)
	}
	row := make([]byte, w+1) // filter byte + pixels
	for y := 0; y < h; y++ {
		zw.Write(row)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)
	return buf.Bytes()
}

func TestInspectSkipsDecodeAboveLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		w, h     int
		wantHash bool
	}{
		{name: "small", w: 64, h: 64, wantHash: true},
		{name: "over limit", w: 8000, h: 5001, wantHash: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			data := blankGrayPNG(t, tc.w, tc.h)
			r := Inspect("crash.png", "image/png", data)

			if r.Width != tc.w || r.Height != tc.h {
				t.Errorf("dimensions = %dx%d, want %dx%d", r.Width, r.Height, tc.w, tc.h)
			}
			if got := r.PerceptualHash != ""; got != tc.wantHash {
				t.Errorf("PerceptualHash = %q, want hash: %v", r.PerceptualHash, tc.wantHash)
			}
		})
	}
}

func TestInspectMismatchAndNonImage(t *testing.T) {
	t.Parallel()

	r := Inspect("crash.jpg", "image/jpeg", []byte("just some text, not a photo"))
	if !r.MIMEMismatch {
		t.Error("MIMEMismatch = false for text declared as jpeg")
	}
	if r.Width != 0 || r.PerceptualHash != "" {
		t.Errorf("non-image got image facts: %+v", r)
	}

	empty := Inspect("empty.bin", "", nil)
	if empty.MIMEMismatch {
		t.Error("MIMEMismatch = true with no declared type")
	}
	if empty.MD5 != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("MD5(empty) = %q", empty.MD5)
	}
}

func TestBaseMIME(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"audio/webm;codecs=opus": "audio/webm",
		"Image/PNG":              "image/png",
		" video/mp4 ":            "video/mp4",
	}
	for in, want := range tests {
		if got := baseMIME(in); got != want {
			t.Errorf("baseMIME(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractMetadataUnsupported(t *testing.T) {
	t.Parallel()
	if m := ExtractMetadata("image/gif", []byte("GIF89a")); m != nil {
		t.Errorf("ExtractMetadata(gif) = %+v, want nil", m)
	}
	if m := ExtractMetadata("image/jpeg", []byte{0xff, 0xd8, 0x00}); m != nil {
		t.Errorf("ExtractMetadata(truncated jpeg) = %+v, want nil", m)
	}
}
