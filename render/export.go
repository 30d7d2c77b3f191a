package render

import (
	"bufio"
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/RyanBlaney/sonido-spectra/logging"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
)

// Format is an export file type, chosen by file extension
type Format string

const (
	FormatPNG     Format = "png"
	FormatJPEG    Format = "jpeg"
	FormatSVG     Format = "svg"
	FormatPDF     Format = "pdf"
	FormatText    Format = "text"
	FormatParquet Format = "parquet"
)

const jpegQuality = 95

// FormatFromPath maps a file extension to an export format
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".svg":
		return FormatSVG, nil
	case ".pdf":
		return FormatPDF, nil
	case ".dat", ".txt":
		return FormatText, nil
	case ".parquet":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Export saves the displayed part of res to path. The file appears only
// once it has been written completely.
func Export(path string, res *spectrum.Result, params spectrum.Parameters, opts PlotOptions) error {
	logger := logging.WithFields(logging.Fields{
		"component": "render",
		"function":  "Export",
		"path":      path,
	})

	format, err := FormatFromPath(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}

	fig, err := NewFigure(res, params, opts)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := writeAtomic(path, func(w io.Writer) error {
		return fig.Encode(w, format)
	}); err != nil {
		logger.Error(err, "Export failed", logging.Fields{"format": format})
		return &ExportError{Path: path, Err: err}
	}

	logger.Info("Exported spectrum", logging.Fields{
		"format": format,
		"points": len(fig.Frequencies),
		"dpi":    opts.DPI,
	})
	return nil
}

// Encode writes the figure in the given format
func (f *Figure) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		return f.RenderPNG(w)
	case FormatSVG:
		return f.RenderSVG(w)
	case FormatJPEG:
		return f.encodeJPEG(w)
	case FormatPDF:
		return f.encodePDF(w)
	case FormatText:
		return f.encodeText(w)
	case FormatParquet:
		return f.encodeParquet(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (f *Figure) encodeJPEG(w io.Writer) error {
	var buf bytes.Buffer
	if err := f.RenderPNG(&buf); err != nil {
		return err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode rendered png: %w", err)
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}

// encodeText writes two whitespace-separated columns, loadable by the
// same parser as the input trajectories
func (f *Figure) encodeText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n# frequency_cm-1 magnitude\n", f.Options.Title)
	for i := range f.Frequencies {
		fmt.Fprintf(bw, "%.10g %.10g\n", f.Frequencies[i], f.Magnitudes[i])
	}
	return bw.Flush()
}

// spectrumRow is the parquet schema of an exported spectrum
type spectrumRow struct {
	Frequency float64 `parquet:"frequency_cm1"`
	Magnitude float64 `parquet:"magnitude"`
}

func (f *Figure) encodeParquet(w io.Writer) error {
	rows := make([]spectrumRow, len(f.Frequencies))
	for i := range rows {
		rows[i] = spectrumRow{Frequency: f.Frequencies[i], Magnitude: f.Magnitudes[i]}
	}
	return parquet.Write(w, rows)
}

// writeAtomic writes through a temporary file in the target directory and
// renames it into place on success
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
