package main

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/artgen"
)

const jpegQuality = 92

// writeImage encodes s in the format named by ext (".png", ".jpg", ".jpeg" or ".pdf").
func writeImage(w io.Writer, s *artgen.Surface, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return s.EncodePNG(w)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, s.Image(), &jpeg.Options{Quality: jpegQuality})
	case ".pdf":
		return writePDF(w, s)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// writePDF places the raster on a single page sized to it, one point per pixel.
func writePDF(w io.Writer, s *artgen.Surface) error {
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return err
	}

	width, height := float64(s.Width()), float64(s.Height())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("artwork", opts, &buf)
	pdf.ImageOptions("artwork", 0, 0, width, height, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

// saveSurface writes s to path, picking the format from its extension.
func saveSurface(path string, s *artgen.Surface) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := writeImage(f, s, filepath.Ext(path)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
