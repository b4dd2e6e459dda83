package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Glyphs are the markers printed in front of status lines
type Glyphs struct {
	OK   string
	Fail string
	Info string
}

var (
	EmojiGlyphs = Glyphs{OK: "✅", Fail: "❌", Info: "📌"}
	PlainGlyphs = Glyphs{OK: "[OK]", Fail: "[FAIL]", Info: "[INFO]"}
)

// GlyphsFor picks emoji markers for terminals and bracketed text for pipes and files
func GlyphsFor(w io.Writer) Glyphs {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return EmojiGlyphs
	}
	return PlainGlyphs
}

// StatusPrinter writes one human-readable line per diagnostic step
type StatusPrinter struct {
	w      io.Writer
	glyphs Glyphs
}

// NewStatusPrinter creates a printer with glyphs chosen for w
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{w: w, glyphs: GlyphsFor(w)}
}

func (p *StatusPrinter) OK(format string, args ...interface{}) {
	p.status(p.glyphs.OK, format, args...)
}

func (p *StatusPrinter) Fail(format string, args ...interface{}) {
	p.status(p.glyphs.Fail, format, args...)
}

func (p *StatusPrinter) Info(format string, args ...interface{}) {
	p.status(p.glyphs.Info, format, args...)
}

// Line writes an unmarked line
func (p *StatusPrinter) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Separator writes the rule printed between connecting and the remaining steps
func (p *StatusPrinter) Separator() {
	fmt.Fprintln(p.w, "====================")
}

func (p *StatusPrinter) status(glyph, format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s %s\n", glyph, fmt.Sprintf(format, args...))
}
