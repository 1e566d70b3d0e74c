package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/veckit/vec"
)

var (
	soakOps      int
	soakFailRate float64
)

func init() {
	cmd := newSoakCmd()
	cmd.Flags().IntVar(&soakOps, "ops", 100_000, "Number of operations to run")
	cmd.Flags().Float64Var(&soakFailRate, "fail-rate", 0,
		"Probability that an element operation fails (exercises rollback paths)")
	rootCmd.AddCommand(cmd)
}

func newSoakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "soak",
		Short: "Run a randomized operation soak against a reference model",
		Long: `The soak command applies a random sequence of vector operations
(push, pop, insert, erase, reserve, resize, overwrite) and mirrors every
mutation into a plain Go slice. Any disagreement between the two, or any
invariant violation, aborts the run.

With --fail-rate > 0, element operations fail at random and the run
additionally verifies that every failure leaves the vector in a valid
state.

Example:
  vecstress soak --ops 1000000
  vecstress soak --ops 500000 --fail-rate 0.001 --seed 7
  vecstress soak --mapped`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSoak()
		},
	}
}

// errChaos is the failure injected by chaosLifecycle.
var errChaos = errors.New("vecstress: injected failure")

// chaosLifecycle is an int64 lifecycle whose fallible hooks fail at random,
// for exercising the container's rollback paths outside of unit tests.
type chaosLifecycle struct {
	rng      *rand.Rand
	failRate float64
	injected int
}

func (c *chaosLifecycle) fail() bool {
	if c.failRate > 0 && c.rng.Float64() < c.failRate {
		c.injected++
		return true
	}
	return false
}

func (c *chaosLifecycle) Init() (int64, error) {
	if c.fail() {
		return 0, errChaos
	}
	return 0, nil
}

func (c *chaosLifecycle) Copy(v int64) (int64, error) {
	if c.fail() {
		return 0, errChaos
	}
	return v, nil
}

func (c *chaosLifecycle) Move(src *int64) (int64, error) {
	if c.fail() {
		return 0, errChaos
	}
	out := *src
	*src = 0
	return out, nil
}

func (c *chaosLifecycle) Set(dst *int64, src *int64) error {
	if c.fail() {
		return errChaos
	}
	*dst = *src
	*src = 0
	return nil
}

func (c *chaosLifecycle) Drop(v *int64) {
	*v = 0
}

func (c *chaosLifecycle) Policy() vec.RelocatePolicy {
	// Failing moves downgrade growth to the basic guarantee; copy
	// relocation keeps it strong, which is what a fallible type would pick.
	return vec.RelocateCopy
}

// Compile-time interface check
var _ vec.Lifecycle[int64] = (*chaosLifecycle)(nil)

func runSoak() error {
	log := newLogger()
	rng := rand.New(rand.NewSource(seed))
	chaos := &chaosLifecycle{rng: rng, failRate: soakFailRate}

	var opts []vec.Option
	if mapped {
		opts = append(opts, vec.Mapped())
	}
	v := vec.NewWith[int64](chaos, opts...)
	defer v.Close()

	model := []int64{}
	failures := 0

	for step := 0; step < soakOps; step++ {
		val := rng.Int63n(1 << 30)
		op := rng.Intn(16)

		var err error
		switch {
		case op < 6: // push back, weighted heaviest
			if err = v.PushBack(val); err == nil {
				model = append(model, val)
			}
		case op < 8: // pop back
			if v.Len() > 0 {
				v.PopBack()
				model = model[:len(model)-1]
			}
		case op < 11: // insert
			pos := rng.Intn(len(model) + 1)
			if err = v.Insert(pos, val); err == nil {
				model = append(model[:pos], append([]int64{val}, model[pos:]...)...)
			}
		case op < 13: // erase
			if len(model) > 0 {
				pos := rng.Intn(len(model))
				if _, err = v.Erase(pos); err == nil {
					model = append(model[:pos], model[pos+1:]...)
				} else {
					// A failed erase shifted elements in place; resync the
					// model from the (still valid) vector.
					model = snapshot(v)
				}
			}
		case op < 14: // reserve
			err = v.Reserve(rng.Intn(4096))
		case op < 15: // resize
			n := rng.Intn(2048)
			if err = v.Resize(n); err == nil {
				for len(model) < n {
					model = append(model, 0)
				}
				model = model[:n]
			} else {
				model = snapshot(v)
			}
		default: // overwrite
			if v.Len() > 0 {
				pos := rng.Intn(v.Len())
				v.Set(pos, val)
				model[pos] = val
			}
		}

		if err != nil {
			failures++
			log.Debug("operation failed", "step", step, "op", op, "err", err)
			// Failures on basic-guarantee paths may leave valid-but-changed
			// content; the vector must still satisfy its invariants.
			model = snapshot(v)
		}
		if v.Len() > v.Cap() || v.Len() != len(model) {
			return fmt.Errorf("step %d: invariant violated: len=%d cap=%d model=%d",
				step, v.Len(), v.Cap(), len(model))
		}
		if step%1024 == 0 {
			if err := compare(v, model); err != nil {
				return fmt.Errorf("step %d: %w", step, err)
			}
		}
	}

	if err := compare(v, model); err != nil {
		return err
	}
	report(v, failures, chaos.injected)
	return nil
}

func snapshot(v *vec.Vector[int64]) []int64 {
	out := make([]int64, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		out = append(out, v.At(i))
	}
	return out
}

func compare(v *vec.Vector[int64], model []int64) error {
	if v.Len() != len(model) {
		return fmt.Errorf("length diverged: vector=%d model=%d", v.Len(), len(model))
	}
	for i := range model {
		if v.At(i) != model[i] {
			return fmt.Errorf("content diverged at %d: vector=%d model=%d", i, v.At(i), model[i])
		}
	}
	return nil
}

func report(v *vec.Vector[int64], failures, injected int) {
	p := message.NewPrinter(language.English)
	st := v.Stats()
	var elem int64

	p.Fprintf(os.Stdout, "soak complete: %d operations\n", soakOps)
	p.Fprintf(os.Stdout, "  final length     %d (capacity %d, %s)\n",
		v.Len(), v.Cap(), humanize.Bytes(uint64(v.Cap())*uint64(unsafe.Sizeof(elem))))
	p.Fprintf(os.Stdout, "  regions          %d allocated, %d growth events\n", st.Allocs, st.Grows)
	p.Fprintf(os.Stdout, "  relocations      %d moved, %d copied\n", st.Moved, st.Copied)
	p.Fprintf(os.Stdout, "  teardowns        %d dropped\n", st.Dropped)
	p.Fprintf(os.Stdout, "  injected faults  %d (%d surfaced as operation failures)\n", injected, failures)
}
