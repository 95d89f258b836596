package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/9seconds/ipdossier/dossier"
)

const (
	DefaultTypewriterDelay = 10 * time.Millisecond

	mapLinkLabel    = "Map Link"
	mapLinkTemplate = "https://www.openstreetmap.org/?mlat=%[1]s&mlon=%[2]s#map=12/%[1]s/%[2]s"
)

type printer struct {
	out    io.Writer
	delay  time.Duration
	label  *color.Color
	banner *color.Color
}

func (p *printer) Banner(text string) {
	p.typewrite(p.banner.Sprintf("=== %s ===", text))
}

func (p *printer) Newline() {
	fmt.Fprintln(p.out)
}

func (p *printer) Record(record dossier.Record) {
	for _, v := range record.Fields() {
		p.field(v.Label, v.Value)
	}

	if link, ok := mapLink(record); ok {
		p.field(mapLinkLabel, link)
	}
}

func (p *printer) field(label, value string) {
	p.typewrite(p.label.Sprintf("%-25s", label) + ": " + value)
}

func (p *printer) typewrite(line string) {
	if p.delay <= 0 {
		fmt.Fprintln(p.out, line)

		return
	}

	for _, r := range line {
		fmt.Fprint(p.out, string(r))
		time.Sleep(p.delay)
	}

	fmt.Fprintln(p.out)
}

func mapLink(record dossier.Record) (string, bool) {
	if !record.Known(dossier.LabelLatitude) || !record.Known(dossier.LabelLongitude) {
		return "", false
	}

	latitude, _ := record.Get(dossier.LabelLatitude)
	longitude, _ := record.Get(dossier.LabelLongitude)

	return fmt.Sprintf(mapLinkTemplate, latitude, longitude), true
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newPrinter creates a report printer. Typewriter delay and colors are
// applied only if output is a terminal.
func newPrinter(out io.Writer, delay time.Duration, terminal bool) *printer {
	rv := &printer{
		out:    out,
		delay:  delay,
		label:  color.New(color.FgCyan, color.Bold),
		banner: color.New(color.FgGreen, color.Bold),
	}

	if !terminal {
		rv.delay = 0
		rv.label.DisableColor()
		rv.banner.DisableColor()
	}

	return rv
}
