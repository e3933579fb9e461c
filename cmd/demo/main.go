package main

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/term"

	handleseq "github.com/wippyai/handle-seq"
)

func main() {
	var (
		count       = flag.Int("n", 10, "Number of distinct items to build")
		removeSeq   = flag.Int("remove", -1, "Drop every item with this seq (-1 to skip)")
		failAt      = flag.Int("failat", 0, "Make the nth duplication fail (0 to disable)")
		debug       = flag.Bool("debug", false, "Log guard and rollback activity")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		handleseq.SetLogger(l)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*count); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		report()
		return
	}

	if err := run(*count, *removeSeq, *failAt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	report()
}

func run(count, removeSeq, failAt int) error {
	items := buildSequence(count)
	g := handleseq.NewSliceGuard(&items)
	defer g.Drop()

	fmt.Printf("Initial sequence (%d items):\n", len(items))
	printItems(items)

	// Order by seq, then collapse the duplicates.
	slices.SortFunc(items, handleseq.DerefBoth(func(a, b Item) int {
		return cmp.Compare(a.Seq, b.Seq)
	}))
	items = items[:handleseq.Unique(items)]

	fmt.Println("==================================")
	fmt.Printf("Sorted and deduplicated (%d items):\n", len(items))
	printItems(items)

	if removeSeq >= 0 {
		items = items[:handleseq.RemoveFunc(items, func(v Item) bool {
			return v.Seq == removeSeq
		})]

		fmt.Println("==================================")
		fmt.Printf("Removed seq=%d (%d items):\n", removeSeq, len(items))
		printItems(items)
	}

	if failAt > 0 {
		ArmFailure(failAt)
	}
	copies, err := handleseq.DeepCopy(items)
	if err != nil {
		fmt.Println("==================================")
		fmt.Printf("Deep copy failed cleanly: %v\n", err)
		return nil
	}
	cg := handleseq.NewSliceGuard(&copies)
	defer cg.Drop()

	fmt.Println("==================================")
	fmt.Printf("Deep copy (%d items):\n", len(copies))
	printItems(copies)

	return nil
}

// buildSequence allocates count distinct items plus a few duplicates so the
// dedup steps have work to do.
func buildSequence(count int) []*Item {
	items := make([]*Item, 0, count+4)
	items = append(items, NewItem(1))
	for i := 0; i < count; i++ {
		items = append(items, NewItem(i))
	}
	items = append(items, NewItem(1), NewItem(9), NewItem(9), NewItem(9))
	return items
}

func printItems(items []*Item) {
	for i, it := range items {
		if it == nil {
			fmt.Printf("  [%d] <nil>\n", i)
			continue
		}
		fmt.Printf("  [%d] %v  (%p)\n", i, it, it)
	}
}

func report() {
	fmt.Println("==================================")
	fmt.Printf("Items allocated: %d\n", stats.allocated)
	fmt.Printf("Items dropped:   %d\n", stats.dropped)
	fmt.Printf("Still live:      %d\n", live())
	if stats.doubleDrops > 0 {
		fmt.Printf("Double drops:    %d\n", stats.doubleDrops)
	}
}
