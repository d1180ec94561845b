package qoracle

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

/*
Printer writes state vectors in ket notation, one basis state per line:

	|10> : -0.5000+0.0000i

Number formatting is applied per value, nothing global is touched.
*/
type Printer struct {
	w         io.Writer
	precision int
	padLabels bool
}

func NewPrinter(w io.Writer, config *Config) *Printer {
	return &Printer{
		w:         w,
		precision: config.Precision,
		padLabels: config.PadLabels,
	}
}

// Labels returns the basis label of every index of sv, in order.
func (p *Printer) Labels(sv *StateVector) []string {
	labels := make([]string, sv.Len())
	for x := range labels {
		if p.padLabels {
			labels[x] = PaddedLabel(x, sv.Qubits())
		} else {
			labels[x] = BinaryLabel(x)
		}
	}
	return labels
}

// FormatAmplitude renders a as <real><sign><imag>i. The "+" is explicit
// whenever the imaginary part is >= 0, zero included.
func (p *Printer) FormatAmplitude(a complex128) string {
	var sb strings.Builder

	sb.WriteString(strconv.FormatFloat(real(a), 'f', p.precision, 64))
	if imag(a) >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(strconv.FormatFloat(imag(a), 'f', p.precision, 64))
	sb.WriteByte('i')

	return sb.String()
}

// Print writes the full listing of sv followed by a blank line.
func (p *Printer) Print(sv *StateVector) error {
	var sb strings.Builder

	for x, label := range p.Labels(sv) {
		fmt.Fprintf(&sb, "|%s> : %s\n", label, p.FormatAmplitude(sv.Amplitudes[x]))
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		return fmt.Errorf("print state: %w", err)
	}
	return nil
}

// Heading writes a single title line ahead of a listing.
func (p *Printer) Heading(title string) error {
	if _, err := fmt.Fprintln(p.w, title); err != nil {
		return fmt.Errorf("print heading: %w", err)
	}
	return nil
}
