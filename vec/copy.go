package vec

// Clone returns a deep copy of v with capacity equal to v.Len(). If
// duplicating an element fails, everything built so far is dropped and the
// new region released before the error propagates.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := NewWith(v.lc)
	out.cfg = v.cfg
	if v.size == 0 {
		return out, nil
	}
	b, err := out.alloc(v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		x, err := v.lc.Copy(*v.slot(i))
		if err != nil {
			for j := 0; j < i; j++ {
				v.lc.Drop(b.Ptr(j))
			}
			releaseQuiet(&b)
			return nil, err
		}
		*b.Ptr(i) = x
		out.stats.Copied++
	}
	out.data.Swap(&b)
	out.size = v.size
	return out, nil
}

// CopyFrom copy-assigns rhs into v.
//
// When rhs.Len() exceeds v's current capacity, a complete clone of rhs is
// built first and exchanged in, so a failure leaves v entirely unchanged
// (strong guarantee). When rhs fits in current capacity the storage is
// reused: the overlapping prefix is overwritten, then the excess tail is
// either dropped or copied in. A failure on the reuse path leaves a valid
// vector whose content may be partially updated (basic guarantee).
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Cap() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		// tmp now holds v's previous state; tear it down.
		tmp.Close()
		return nil
	}
	n := min(v.size, rhs.size)
	for i := 0; i < n; i++ {
		x, err := v.lc.Copy(*rhs.slot(i))
		if err != nil {
			return err
		}
		v.drop(v.slot(i))
		*v.slot(i) = x
		v.stats.Copied++
	}
	if rhs.size < v.size {
		for i := rhs.size; i < v.size; i++ {
			v.drop(v.slot(i))
		}
		v.size = rhs.size
		return nil
	}
	for v.size < rhs.size {
		x, err := v.lc.Copy(*rhs.slot(v.size))
		if err != nil {
			return err
		}
		*v.slot(v.size) = x
		v.size++
		v.stats.Copied++
	}
	return nil
}

// Take move-assigns src into v: v's current contents are torn down, src's
// storage, size, and lifecycle are adopted in constant time, and src is
// left as an empty vector (size 0, capacity 0). Never allocates, never
// fails.
func (v *Vector[T]) Take(src *Vector[T]) {
	if v == src {
		return
	}
	v.Close()
	tmp := src.data.Take()
	v.data.Swap(&tmp)
	v.size = src.size
	src.size = 0
	// Elements must be torn down by the lifecycle that built them.
	v.lc = src.lc
	v.cfg = src.cfg
}

// Swap exchanges the complete state of two vectors in constant time.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.data.Swap(&o.data)
	v.size, o.size = o.size, v.size
	v.lc, o.lc = o.lc, v.lc
	v.cfg, o.cfg = o.cfg, v.cfg
	v.stats, o.stats = o.stats, v.stats
}

// Close drops every live element and releases the storage region. The
// vector remains usable as an empty vector. Idempotent.
func (v *Vector[T]) Close() {
	for i := 0; i < v.size; i++ {
		v.drop(v.slot(i))
	}
	v.size = 0
	releaseQuiet(&v.data)
}
