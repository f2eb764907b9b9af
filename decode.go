package frac

import (
	"bufio"
	"fmt"
	"io"
)

// Scan implements fmt.Scanner. It consumes the rest of the current line and
// reads it with ParseLine; f is unchanged on error.
func (f *Frac) Scan(state fmt.ScanState, verb rune) error {
	state.SkipSpace()
	tok, err := state.Token(false, func(r rune) bool { return r != '\n' })
	if err != nil {
		return err
	}
	g, err := ParseLine(string(tok))
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// A Decoder reads one fraction per line from an input stream.
//
// The first failure, whether a read error, io.EOF or a malformed line, is
// kept: later calls to Decode return it without reading until Clear is
// called.
type Decoder struct {
	r   *bufio.Reader
	err error

	// Simplify reduces every decoded fraction to lowest terms.
	Simplify bool
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the next line into f. f is unchanged on error.
func (d *Decoder) Decode(f *Frac) error {
	if d.err != nil {
		return d.err
	}

	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		d.err = err
		return err
	}

	g, err := ParseLine(line)
	if err == nil && d.Simplify {
		g, err = g.approx()
	}
	if err != nil {
		d.err = err
		return err
	}
	*f = g
	return nil
}

// Err returns the error that failed the Decoder, if any.
func (d *Decoder) Err() error {
	return d.err
}

// Clear resets a failed Decoder so that Decode reads again. The line that
// caused the failure has already been consumed.
func (d *Decoder) Clear() {
	d.err = nil
}
