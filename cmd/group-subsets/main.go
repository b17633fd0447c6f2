// Command group-subsets asks for a list of integers and prints every subset of
// it, grouped by sum.
package main

import (
	"fmt"
	"os"

	"github.com/bcspragu/subsums/io"
	"github.com/bcspragu/subsums/sums"
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		table = flag.Bool("table", false, "Print the groups as a table instead of a dictionary.")
	)
	flag.Parse()

	p := &io.Prompter{In: os.Stdin, Out: os.Stdout}
	nums, err := p.ReadIntegers()
	if err != nil {
		log.Fatalf("Failed to read numbers: %v", err)
	}

	g := sums.GroupSubsetsBySum(nums)
	if *table {
		io.PrintGroupTable(os.Stdout, g)
		return
	}
	fmt.Println(io.FormatGroups(g))
}
