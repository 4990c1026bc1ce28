package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"schoolhub_backend/internals/configs"
)

const maxImageWidth = 1600

// SaveUploadedImage decodes an uploaded jpeg/png/webp, resizes it down to
// maxImageWidth when wider, re-encodes it as webp, and stores it under the
// media root in the given folder (organized by owning entity id, e.g.
// "student_profiles/<id>"). It returns the media-relative path recorded in
// the database.
func SaveUploadedImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// jpeg/png failed; try webp before giving up
		img, err = webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return "", fmt.Errorf("decode image: %w", err)
		}
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	relPath := path.Join(folder, uuid.New().String()+".webp")
	absPath := filepath.Join(configs.MediaRoot, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(absPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return relPath, nil
}

// RemoveMediaFile deletes a stored media file, ignoring already-gone files.
func RemoveMediaFile(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(configs.MediaRoot, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
