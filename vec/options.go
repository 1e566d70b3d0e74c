package vec

// Option configures a Vector at construction time.
type Option func(*config)

type config struct {
	mapped bool
}

// Mapped requests mapped (anonymous mmap) storage for every region the
// vector allocates, keeping element memory outside the Go heap. Restricted
// to pointer-free element types; the first allocating operation reports
// block.ErrPointerElems otherwise.
func Mapped() Option {
	return func(c *config) {
		c.mapped = true
	}
}
