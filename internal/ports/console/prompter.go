package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coup/internal/ports"
)

// Prompter implements ports.PromptPort over a line-oriented reader and writer.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	style styles
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, style: newStyles(out)}
}

// Choose prints a numbered list and re-asks until a valid number is entered.
func (p *Prompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to choose for %q", title)
	}
	fmt.Fprintln(p.out, p.style.heading.Render(title))
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %s %s\n", p.style.muted.Render(fmt.Sprintf("%d)", i+1)), opt)
	}
	for {
		fmt.Fprintf(p.out, "choice [1-%d]: ", len(options))
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("%w: %v", ports.ErrInputClosed, err)
			}
			return 0, ports.ErrInputClosed
		}
		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, p.style.warn.Render(fmt.Sprintf("enter a number between 1 and %d", len(options))))
			continue
		}
		return n - 1, nil
	}
}
