// Command sums-of-n asks for an alphabet of integers and a length, and prints
// the distinct sums of every sequence of that length drawn from the alphabet.
package main

import (
	"context"
	"os"

	"github.com/bcspragu/subsums"
	"github.com/bcspragu/subsums/io"
	"github.com/bcspragu/subsums/sums"
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		workers = flag.Int("workers", 1, "Number of goroutines to sum with, values above one split the work by first element.")
	)
	flag.Parse()

	p := &io.Prompter{In: os.Stdin, Out: os.Stdout}
	nums, err := p.ReadIntegers()
	if err != nil {
		log.Fatalf("Failed to read numbers: %v", err)
	}
	k, err := p.ReadLength()
	if err != nil {
		log.Fatalf("Failed to read length: %v", err)
	}

	var set subsums.SumSet
	if *workers > 1 {
		set, err = sums.ParallelSumsOfLength(context.Background(), k, nums, *workers)
	} else {
		set, err = sums.SumsOfLength(k, nums)
	}
	if err != nil {
		log.Fatalf("Failed to compute sums: %v", err)
	}

	io.PrintSums(os.Stdout, set.Sorted())
}
