package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed characters maps tiles
var assetsFS embed.FS

// FS exposes the embedded assets rooted at the assets directory, for
// loaders that resolve relative references themselves.
func FS() fs.FS {
	return assetsFS
}

// DecodeImage decodes an embedded image by assets-relative path without
// touching the GPU.
func DecodeImage(fsys fs.FS, p string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, CleanPath(p))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return img, nil
}

// LoadImage loads an embedded image by assets-relative path.
func LoadImage(p string) (*ebiten.Image, error) {
	img, err := DecodeImage(assetsFS, p)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// CleanPath turns an OS path, absolute path or "assets/"-prefixed path into
// a slash separated path relative to the assets root.
func CleanPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return path.Clean(s[idx+len("/assets/"):])
		}
		return path.Base(s)
	}
	s := filepath.ToSlash(p)
	s = strings.TrimPrefix(s, "assets/")
	return path.Clean(s)
}
