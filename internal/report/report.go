// Package report renders catalog query results as text.
package report

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"text/tabwriter"

	"brickset/internal/codec"
	"brickset/internal/domain"
)

// Catalog is the query surface a report reads from
type Catalog interface {
	CountByTag(tag string) int
	CountWithName() int
	ThemesDescending() []string
	NamesAbovePieces(threshold int) iter.Seq[string]
	MaxPieces() int
	NamesStartingWith(letter rune) iter.Seq2[string, error]
}

// Options holds the arguments of the standard report
type Options struct {
	Tag            string
	PieceThreshold int
	Letter         rune
	// Headings prefixes every section with a "# ..." line
	Headings bool
}

// Write runs every query and prints the results in a fixed order:
// tag count, named count, themes, names above the threshold, largest piece
// count and names starting with the letter.
func Write(w io.Writer, c Catalog, opts Options) error {
	p := &printer{w: w, headings: opts.Headings}

	p.section("Sets tagged %q", opts.Tag)
	p.line(strconv.Itoa(c.CountByTag(opts.Tag)))

	p.section("Sets with a name")
	p.line(strconv.Itoa(c.CountWithName()))

	p.section("Themes in reverse order")
	for _, theme := range c.ThemesDescending() {
		p.line(theme)
	}

	p.section("Sets with more than %d pieces", opts.PieceThreshold)
	for name := range c.NamesAbovePieces(opts.PieceThreshold) {
		p.line(name)
	}

	p.section("Largest piece count")
	p.line(strconv.Itoa(c.MaxPieces()))

	p.section("Sets starting with %q", opts.Letter)
	for name, err := range c.NamesStartingWith(opts.Letter) {
		if err != nil {
			return fmt.Errorf("names starting with %q: %w", opts.Letter, err)
		}
		p.line(name)
	}

	return p.err
}

// Lines prints every value of seq on its own line
func Lines(w io.Writer, seq iter.Seq[string]) error {
	p := &printer{w: w}
	for s := range seq {
		p.line(s)
		if p.err != nil {
			break
		}
	}
	return p.err
}

// Sets prints sets as an aligned table ("text") or through a codec ("json", "yaml")
func Sets(w io.Writer, sets []domain.LegoSet, format string) error {
	if format == "" || format == "text" {
		return table(w, sets)
	}

	c, err := codec.ForFormat[domain.LegoSet](format)
	if err != nil {
		return err
	}
	return c.Export(sets, w)
}

func table(w io.Writer, sets []domain.LegoSet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tNAME\tTHEME\tPIECES\tTAGS")
	for _, s := range sets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Theme, s.Pieces, strings.Join(s.Tags, ","))
	}
	return tw.Flush()
}

// printer remembers the first write error so callers check once
type printer struct {
	w        io.Writer
	headings bool
	err      error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) section(format string, args ...any) {
	if !p.headings {
		return
	}
	p.line("# " + fmt.Sprintf(format, args...))
}
