package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jmylchreest/colormix/internal/colour"
	"github.com/jmylchreest/colormix/internal/config"
	"github.com/jmylchreest/colormix/internal/mix"
)

const swatchWidth = 8

// noColoursMessage is printed when no code produced a colour.
const noColoursMessage = "No color found. New color cannot be created."

// renderer writes a mix result in one of the output formats.
type renderer struct {
	out     io.Writer
	format  string
	preview bool
	header  *color.Color
}

func newRenderer(out io.Writer, format, preview string) *renderer {
	tty := isTerminal(out)

	header := color.New(color.Bold)
	if tty {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	return &renderer{
		out:     out,
		format:  format,
		preview: wantPreview(preview, tty),
		header:  header,
	}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func wantPreview(setting string, tty bool) bool {
	switch setting {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	default:
		return tty
	}
}

func (r *renderer) render(mode mix.Mode, res mix.Result) error {
	switch r.format {
	case config.FormatJSON:
		return r.renderJSON(mode, res)
	case config.FormatTable:
		return r.renderTable(res)
	default:
		return r.renderText(res)
	}
}

func (r *renderer) renderEmpty(mode mix.Mode) error {
	if r.format == config.FormatJSON {
		return r.renderJSON(mode, mix.Result{Colours: []colour.Color{}})
	}
	_, err := fmt.Fprintln(r.out, noColoursMessage)
	return err
}

func (r *renderer) renderText(res mix.Result) error {
	if _, err := r.header.Fprintln(r.out, "All colors:"); err != nil {
		return err
	}
	for _, c := range res.Colours {
		if err := r.writeReport(c); err != nil {
			return err
		}
	}

	if res.New == nil {
		return nil
	}
	if _, err := r.header.Fprintln(r.out, "New color:"); err != nil {
		return err
	}
	return r.writeReport(*res.New)
}

func (r *renderer) writeReport(c colour.Color) error {
	if _, err := fmt.Fprintln(r.out, c.String()); err != nil {
		return err
	}
	if r.preview {
		if _, err := fmt.Fprintf(r.out, "\tPreview: %s\n", colour.Swatch(c, swatchWidth)); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) renderTable(res mix.Result) error {
	headers := []string{"#", "HEX", "RGBA", "HUE", "SATURATION", "LIGHTNESS"}
	if r.preview {
		headers = append(headers, "PREVIEW")
	}

	table := NewTable(headers)
	for i, c := range res.Colours {
		table.AddRow(r.tableRow(strconv.Itoa(i+1), c))
	}
	if res.New != nil {
		table.AddRow(r.tableRow("new", *res.New))
	}

	_, err := io.WriteString(r.out, table.Render())
	return err
}

func (r *renderer) tableRow(label string, c colour.Color) []string {
	hsl := c.HSL()
	row := []string{
		label,
		c.Hex(),
		c.Tuple(),
		fmt.Sprintf("%.2f", hsl.H),
		fmt.Sprintf("%.4f", hsl.S),
		fmt.Sprintf("%.4f", hsl.L),
	}
	if r.preview {
		row = append(row, colour.Swatch(c, swatchWidth))
	}
	return row
}

// resultJSON is the document written by the json format.
type resultJSON struct {
	Mode string `json:"mode"`
	colour.PaletteJSON
	New *colour.ColourJSON `json:"new,omitempty"`
}

func (r *renderer) renderJSON(mode mix.Mode, res mix.Result) error {
	doc := resultJSON{
		Mode:        mode.String(),
		PaletteJSON: colour.NewPalette(res.Colours).JSON(),
	}
	if res.New != nil {
		n := colour.NewColourJSON(*res.New)
		doc.New = &n
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
