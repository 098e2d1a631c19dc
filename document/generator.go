package document

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"strings"

	"github.com/saferoads/incidentd/interfaces"
)

// Page geometry, US letter with one-inch margins.
const (
	pageWidth  = 612
	pageHeight = 792
	marginLeft = 72
	topLine    = 740
	wrapWidth  = 80
)

// Generator implements interfaces.DocumentGenerator. It serializes a report
// into a single-page PDF: title, field table and an optional embedded JPEG
// photo. Output is byte-for-byte identical for identical input, so the
// resulting content identifier is stable too.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the report. Fails with ErrGenerationFailed on invalid
// report fields or an unsupported image format.
func (g *Generator) Generate(report *interfaces.Report) ([]byte, error) {
	if err := report.Validate(); err != nil {
		return nil, err
	}

	var img *imageObject
	if len(report.Image) > 0 {
		obj, err := newImageObject(report.Image)
		if err != nil {
			return nil, err
		}
		img = obj
	}

	content := renderContent(report, img)
	return assemble(content, img), nil
}

// renderContent builds the page content stream.
func renderContent(report *interfaces.Report, img *imageObject) []byte {
	var b bytes.Buffer

	b.WriteString("BT\n/F1 16 Tf\n")
	fmt.Fprintf(&b, "%d %d Td\n(%s) Tj\nET\n", marginLeft, topLine, escapeText("Incident Report"))

	y := topLine - 36
	writeField := func(label, value string) {
		fmt.Fprintf(&b, "BT\n/F1 11 Tf\n%d %d Td\n(%s) Tj\nET\n", marginLeft, y, escapeText(label))
		y -= 16
		for _, line := range wrapText(value, wrapWidth) {
			fmt.Fprintf(&b, "BT\n/F1 11 Tf\n%d %d Td\n(%s) Tj\nET\n", marginLeft, y, escapeText(line))
			y -= 14
		}
		y -= 10
	}

	writeField("Location:", report.Location)
	writeField("Description:", report.Description)
	writeField("Elderly person involved:", string(report.ElderlyInvolved))

	if img != nil {
		// Scale the photo to fit a 300pt box under the fields, preserving
		// aspect ratio.
		w, h := float64(img.width), float64(img.height)
		scale := 300 / w
		if h*scale > 300 {
			scale = 300 / h
		}
		dw, dh := w*scale, h*scale
		fmt.Fprintf(&b, "q\n%.2f 0 0 %.2f %d %.2f cm\n/Im1 Do\nQ\n", dw, dh, marginLeft, float64(y)-dh)
	}

	return b.Bytes()
}

// assemble lays out the PDF object graph and cross-reference table.
func assemble(content []byte, img *imageObject) []byte {
	resources := "<< /Font << /F1 5 0 R >> >>"
	if img != nil {
		resources = "<< /Font << /F1 5 0 R >> /XObject << /Im1 6 0 R >> >>"
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Contents 4 0 R /Resources %s >>",
			pageWidth, pageHeight, resources),
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	if img != nil {
		objects = append(objects, fmt.Sprintf(
			"<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %d >>\nstream\n%s\nendstream",
			img.width, img.height, len(img.data), img.data))
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets[1:] {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return b.Bytes()
}

// imageObject is a JPEG passed through into the PDF via DCTDecode.
type imageObject struct {
	data   []byte
	width  int
	height int
}

func newImageObject(data []byte) (*imageObject, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: photo must be a valid JPEG: %v", interfaces.ErrGenerationFailed, err)
	}
	return &imageObject{data: data, width: cfg.Width, height: cfg.Height}, nil
}

// escapeText escapes the PDF string delimiters.
func escapeText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// wrapText breaks a value into lines at word boundaries, hard-splitting
// words longer than the width.
func wrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			for len(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, word[:width])
				word = word[width:]
			}
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
