package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/pixstring/pixel"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// DecodeError reports a file that could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("imageio: decode: %v", e.Err)
	}
	return fmt.Sprintf("imageio: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// JPEGQuality is the quality used when SaveFile writes a JPEG.
const JPEGQuality = 95

// Decode decodes an image from r, auto-detecting the format, and returns it
// as a planar BGRA buffer.
func Decode(r io.Reader) (*pixel.Buffer[uint8], error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return pixel.FromImage(img), nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*pixel.Buffer[uint8], error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// LoadFile loads the image at path as a planar BGRA buffer.
func LoadFile(path string) (*pixel.Buffer[uint8], error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, err := Decode(f)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return buf, nil
}

// LoadPacked loads the image at path as a Packed32 buffer with BGRA
// channel placement.
func LoadPacked(path string) (*pixel.Buffer[uint32], error) {
	buf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return pixel.ToPacked(buf), nil
}

// EncodePNG writes b to w as PNG.
func EncodePNG(w io.Writer, b *pixel.Buffer[uint8]) error {
	if err := png.Encode(w, pixel.ToImage(b)); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP writes b to w as a 32-bit BMP.
func EncodeBMP(w io.Writer, b *pixel.Buffer[uint8]) error {
	if err := bmp.Encode(w, pixel.ToImage(b)); err != nil {
		return fmt.Errorf("imageio: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF writes b to w as a deflate-compressed TIFF.
func EncodeTIFF(w io.Writer, b *pixel.Buffer[uint8]) error {
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, pixel.ToImage(b), opts); err != nil {
		return fmt.Errorf("imageio: encode TIFF: %w", err)
	}
	return nil
}

// EncodeJPEG writes b to w as JPEG with the given quality (1-100). JPEG has
// no alpha channel, so translucent pixels are flattened.
func EncodeJPEG(w io.Writer, b *pixel.Buffer[uint8], quality int) error {
	quality = min(max(quality, 1), 100)
	if err := jpeg.Encode(w, pixel.ToImage(b), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imageio: encode JPEG: %w", err)
	}
	return nil
}

// SavePNG saves b as a PNG file.
func SavePNG(path string, b *pixel.Buffer[uint8]) error {
	return save(path, b, EncodePNG)
}

// SaveFile saves b, choosing the encoder from the file extension.
func SaveFile(path string, b *pixel.Buffer[uint8]) error {
	enc := encoderFor(path)
	if enc == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return save(path, b, enc)
}

// IsSupported reports whether path has an extension this package decodes.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}

type encodeFunc func(io.Writer, *pixel.Buffer[uint8]) error

func encoderFor(path string) encodeFunc {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return EncodePNG
	case ".bmp":
		return EncodeBMP
	case ".tif", ".tiff":
		return EncodeTIFF
	case ".jpg", ".jpeg":
		return func(w io.Writer, b *pixel.Buffer[uint8]) error {
			return EncodeJPEG(w, b, JPEGQuality)
		}
	}
	return nil
}

func save(path string, b *pixel.Buffer[uint8], enc encodeFunc) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := enc(f, b); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
