package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/dshills/textnav/internal/engine/buffer"
)

// printer writes query results, optionally colored.
type printer struct {
	w        io.Writer
	position *color.Color
	text     *color.Color
	muted    *color.Color
}

// newPrinter creates a printer for mode auto, always or never.
// auto colors only terminals, and never when NO_COLOR is set.
func newPrinter(w io.Writer, mode string) (*printer, error) {
	var enabled bool
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	case "auto", "":
		f, ok := w.(*os.File)
		enabled = ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
	default:
		return nil, fmt.Errorf("invalid --color value %q: want auto, always or never", mode)
	}

	p := &printer{
		w:        w,
		position: color.New(color.FgHiBlue),
		text:     color.New(color.FgYellow, color.Bold),
		muted:    color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.position, p.text, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p, nil
}

// printRange prints "START-END<TAB>"text"" with 1-based positions.
func (p *printer) printRange(doc *buffer.Document, r buffer.Range) {
	fmt.Fprintf(p.w, "%s\t%s\n",
		p.position.Sprintf("%s-%s", formatPosition(r.Start), formatPosition(r.End)),
		p.text.Sprint(strconv.Quote(doc.TextRange(r))),
	)
}

func (p *printer) noMatch() {
	fmt.Fprintln(p.w, p.muted.Sprint("no match"))
}
