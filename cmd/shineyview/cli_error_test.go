package main

import (
	"errors"
	"image"
	"strings"
	"testing"
)

func TestGrabRunCaptureError(t *testing.T) {
	original := captureScreenFn
	sentinel := errors.New("boom")
	captureScreenFn = func() (*image.RGBA, error) { return nil, sentinel }
	t.Cleanup(func() { captureScreenFn = original })

	cmd := &grabCmd{root: &root{program: "shineyview"}, noOpen: true}
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if want := "failed to capture screen"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
}

func TestParseEditClipboardRequiresOutput(t *testing.T) {
	_, err := parseEditCmd([]string{"-from-clipboard", "line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "output file is required when reading from the clipboard"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseEditRejectsUnknownOperation(t *testing.T) {
	_, err := parseEditCmd([]string{"-file", "in.png", "sharpen", "1", "2"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "unsupported operation"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseEditCoordinateArity(t *testing.T) {
	_, err := parseEditCmd([]string{"-file", "in.png", "line", "0", "0", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "line requires 4 integer arguments"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}

	_, err = parseEditCmd([]string{"-file", "in.png", "blur", "5", "five", "3"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "invalid integer"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"red", false},
		{"#00FF00", false},
		{"#00FF0080", false},
		{"", true},
		{"#12", true},
		{"notacolor", true},
	}
	for _, tc := range cases {
		_, err := parseColor(tc.in)
		if tc.wantErr && err == nil {
			t.Errorf("parseColor(%q): expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("parseColor(%q): unexpected error %v", tc.in, err)
		}
	}
}

func TestParseColorHexChannels(t *testing.T) {
	c, err := parseColor("#102030")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0x10 || c.G != 0x20 || c.B != 0x30 || c.A != 0xFF {
		t.Fatalf("unexpected color %+v", c)
	}
}
