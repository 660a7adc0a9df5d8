// Package printer handles output formatting for resolved matches
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

// Printer writes resolved match paths to the configured output
// destination, one per line or as a JSON array.
type Printer struct {
	output      io.Writer
	count       atomic.Int64
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// PrintMatch outputs one resolved path
func (p *Printer) PrintMatch(path string) {
	p.count.Add(1)

	if p.jsonOutput {
		if !p.jsonStarted {
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}

		data, err := json.Marshal(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Fprintf(p.output, "  %s", data)
		return
	}

	if p.useColors {
		fmt.Fprintln(p.output, color.CyanString(path))
	} else {
		fmt.Fprintln(p.output, path)
	}
}

// Finalize completes any pending operations (like closing JSON array)
func (p *Printer) Finalize() {
	if !p.jsonOutput {
		return
	}
	if p.jsonStarted {
		fmt.Fprint(p.output, "\n]\n")
	} else {
		fmt.Fprint(p.output, "[]\n")
	}
}

// GetCount returns the number of matches printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}
