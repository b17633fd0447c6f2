// Package io collects integers from a user on the terminal and renders the
// engine's results for them.
package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bcspragu/subsums"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

var (
	promptColor = color.New(color.FgCyan)
	errColor    = color.New(color.FgRed)
)

// Prompter asks the user on the terminal for integers, one at a time.
type Prompter struct {
	// In is a reader where the user's answers are read from.
	In io.Reader
	// Out is where the prompts should be written out to.
	Out io.Writer

	sc *bufio.Scanner
}

func (p *Prompter) scanner() *bufio.Scanner {
	if p.sc == nil {
		p.sc = bufio.NewScanner(p.In)
	}
	return p.sc
}

// ask writes prompt and returns the next line of input, trimmed.
func (p *Prompter) ask(prompt string) (string, error) {
	promptColor.Fprint(p.Out, prompt)
	sc := p.scanner()
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", errors.Wrap(err, "scanner error")
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

// askInt asks for an integer until it gets one.
func (p *Prompter) askInt(prompt string) (int, error) {
	for {
		txt, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(txt)
		if err != nil {
			errColor.Fprintf(p.Out, "%q is not an integer, try again.\n", txt)
			continue
		}
		return n, nil
	}
}

// ReadIntegers asks for a number, then whether to add another, until the user
// answers anything other than 'y'. It always returns at least one number.
func (p *Prompter) ReadIntegers() ([]int, error) {
	var nums []int
	for {
		n, err := p.askInt("Enter a number: ")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read number %d", len(nums)+1)
		}
		nums = append(nums, n)

		more, err := p.ask("Add another number? (y/n): ")
		if err == io.ErrUnexpectedEOF {
			return nums, nil
		}
		if err != nil {
			return nil, err
		}
		if more != "y" {
			return nums, nil
		}
	}
}

// ReadLength asks how many elements each sequence should have.
func (p *Prompter) ReadLength() (int, error) {
	k, err := p.askInt("Enter the number of elements to combine: ")
	if err != nil {
		return 0, errors.Wrap(err, "failed to read sequence length")
	}
	return k, nil
}

// FormatGroups renders g like {0: [[]], 1: [[1]], 2: [[2]], 3: [[1, 2]]}.
func FormatGroups(g *subsums.SumGroup) string {
	return g.String()
}

// FormatSums renders sorted sums like [2, 3, 4].
func FormatSums(sums []int) string {
	return subsums.FormatList(sums)
}

// PrintGroupTable writes g as a table, one row per sum, in the order the sums
// were found.
func PrintGroupTable(w io.Writer, g *subsums.SumGroup) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Sum", "Count", "Subsets"})
	table.SetAutoWrapText(false)

	for _, grp := range g.Groups() {
		subs := make([]string, len(grp.Subsets))
		for i, s := range grp.Subsets {
			subs[i] = subsums.FormatList(s.Values)
		}
		table.Append([]string{
			strconv.Itoa(grp.Sum),
			strconv.Itoa(len(grp.Subsets)),
			strings.Join(subs, " "),
		})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(g.Count()), ""})

	table.Render()
}

// PrintSums writes sorted sums on a single line.
func PrintSums(w io.Writer, sums []int) {
	fmt.Fprintln(w, FormatSums(sums))
}
