package imagefile

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{200, 100, 50, 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "a.png"))
	touch(t, filepath.Join(dir, "C.PNG"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "d.webp"))
	touch(t, filepath.Join(dir, "e.gif"))
	touch(t, filepath.Join(dir, "f.bmp"))
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []string{"C.PNG", "a.png", "b.jpg", "d.webp", "e.gif", "f.bmp"}
	if len(got) != len(want) {
		t.Fatalf("scan returned %d entries, want %d: %v", len(got), len(want), got)
	}
	for i, name := range want {
		if filepath.Base(got[i]) != name {
			t.Errorf("entry %d = %s, want %s", i, filepath.Base(got[i]), name)
		}
		if !filepath.IsAbs(got[i]) {
			t.Errorf("entry %d is not absolute: %s", i, got[i])
		}
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Fatalf("scan of a missing directory should fail")
	}
}

func TestIsSupported(t *testing.T) {
	for _, p := range []string{"a.png", "b.JPG", "c.jpeg", "d.bmp", "e.gif", "f.WEBP"} {
		if !IsSupported(p) {
			t.Errorf("%s should be supported", p)
		}
	}
	for _, p := range []string{"a.txt", "b", "c.png.bak", "d.tiff"} {
		if IsSupported(p) {
			t.Errorf("%s should not be supported", p)
		}
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	touch(t, bad)
	if _, err := Load(bad); err == nil {
		t.Fatalf("decoding garbage should fail")
	}
	if _, err := Load(filepath.Join(dir, "absent.png")); err == nil {
		t.Fatalf("loading a missing file should fail")
	}
}

func TestLoadReturnsRGBA(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "img.png")
	writePNG(t, p)

	img, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestSaveFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg", "out.bmp"} {
		p := filepath.Join(dir, name)
		if err := Save(p, img); err != nil {
			t.Errorf("save %s: %v", name, err)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("saved file %s missing: %v", name, err)
		}
	}

	if err := Save(filepath.Join(dir, "out.gif"), img); err == nil {
		t.Errorf("gif is not writable and should be rejected")
	}
	if err := Save(filepath.Join(dir, "out.png"), nil); err == nil {
		t.Errorf("nil image should be rejected")
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	if err := os.WriteFile(src, []byte("payload"), 0o604); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "dst.bin")
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("copied contents = %q", got)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o604 {
		t.Errorf("copied mode = %v, want 0604", info.Mode().Perm())
	}

	if err := CopyFile(filepath.Join(dir, "absent"), dst); err == nil {
		t.Errorf("copying a missing source should fail")
	}
}
