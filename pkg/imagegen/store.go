package imagegen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"path/filepath"

	"github.com/gen2brain/webp"
	"github.com/segmentio/ksuid"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

// SaveWebP re-encodes a rendered image as WebP under dir and returns the
// file name. Names are generated_image_<ksuid>.webp.
func SaveWebP(dir string, data []byte) (string, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		var err2 error
		img, _, err2 = image.Decode(bytes.NewReader(data))
		if err2 != nil {
			return "", fmt.Errorf("failed to decode image (png: %v, generic: %v)", err, err2)
		}
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: 100}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	name := "generated_image_" + ksuid.New().String() + ".webp"
	if err := utils.WriteFileAtomic(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", name, err)
	}
	return name, nil
}
