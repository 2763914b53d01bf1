// Package imagefile loads and saves raster images and lists the sibling
// images of a file. PNG, JPEG and BMP can be written; GIF and WEBP are
// additionally recognized when reading and listing.
package imagefile

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/example/shineyview/internal/raster"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
}

// IsSupported reports whether path has a recognized image extension.
func IsSupported(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Normalize resolves path to a cleaned absolute form so that paths compare
// stably regardless of how the caller spelled them.
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("normalize %s: %w", path, err)
	}
	return abs, nil
}

// Load decodes the image at path into an RGBA buffer.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return raster.EnsureRGBA(img), nil
}

// Save encodes img to path in the format implied by the extension. Only
// PNG, JPEG and BMP are writable.
func Save(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("save %s: no image", filepath.Base(path))
	}
	var encode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, nil) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	default:
		return fmt.Errorf("save %s: unsupported format %q", filepath.Base(path), filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}

// CopyFile duplicates src at dst with the source's permission bits. The
// destination is replaced when it already exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("copy to %s: %w", filepath.Base(dst), err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy to %s: %w", filepath.Base(dst), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("copy to %s: %w", filepath.Base(dst), err)
	}
	return nil
}

// Scan lists the image files directly inside dir as normalized absolute
// paths sorted lexicographically. Entries that disappear between listing
// and inspection are skipped, as are non-regular files, so an external
// process mutating the directory never breaks the scan.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		info, err := os.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		norm, err := Normalize(full)
		if err != nil {
			continue
		}
		files = append(files, norm)
	}
	sort.Strings(files)
	return files, nil
}
