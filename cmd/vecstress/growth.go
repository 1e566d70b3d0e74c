package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/veckit/vec"
)

var growthN int

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVar(&growthN, "n", 1_000_000, "Number of elements to append")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "Append N elements and report the capacity trajectory",
		Long: `The growth command appends N elements to an empty vector and
prints every capacity change plus the final relocation totals. With
geometric doubling the total relocations stay below 2N, which is what
makes appends amortized constant time.

Example:
  vecstress growth --n 10000000
  vecstress growth --mapped`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth()
		},
	}
}

func runGrowth() error {
	log := newLogger()
	p := message.NewPrinter(language.English)

	var opts []vec.Option
	if mapped {
		opts = append(opts, vec.Mapped())
	}
	v := vec.New[int64](opts...)
	defer v.Close()

	var elem int64
	elemSize := uint64(unsafe.Sizeof(elem))

	lastCap := -1
	for i := 0; i < growthN; i++ {
		if err := v.PushBack(int64(i)); err != nil {
			return fmt.Errorf("append %d: %w", i, err)
		}
		if v.Cap() != lastCap {
			lastCap = v.Cap()
			log.Debug("capacity changed", "len", v.Len(), "cap", v.Cap())
			p.Fprintf(os.Stdout, "  len %12d -> cap %12d (%s)\n",
				v.Len(), v.Cap(), humanize.Bytes(uint64(v.Cap())*elemSize))
		}
	}

	st := v.Stats()
	reloc := st.Moved + st.Copied
	p.Fprintf(os.Stdout, "appended %d elements\n", growthN)
	p.Fprintf(os.Stdout, "  growth events     %d\n", st.Grows)
	p.Fprintf(os.Stdout, "  total relocations %d (%.2fx N)\n",
		reloc, float64(reloc)/float64(growthN))
	return nil
}
