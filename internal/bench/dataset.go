package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrOutOfRange is matched by every error an out-of-range access produces.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports an access past the end of a Dataset. Must panics
// with it; Checked returns it.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// Dataset is a read-only slice of pseudo-random non-negative ints with three
// bounds-checked accessors, one per error-reporting style.
type Dataset struct {
	values []int
	seed   int64
}

// NewDataset fills a dataset of the given size. A zero seed is replaced by
// the current time; Seed reports the value used.
func NewDataset(size int, seed int64) *Dataset {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))

	values := make([]int, size)
	for i := range values {
		values[i] = int(rng.Int32())
	}
	return &Dataset{values: values, seed: seed}
}

// Len returns the number of elements.
func (d *Dataset) Len() int { return len(d.values) }

// Seed returns the generator seed.
func (d *Dataset) Seed() int64 { return d.seed }

// At returns the element at i and whether i was in range.
func (d *Dataset) At(i int) (int, bool) {
	if i < 0 || i >= len(d.values) {
		return 0, false
	}
	return d.values[i], true
}

// Checked returns the element at i, or an *OutOfRangeError.
func (d *Dataset) Checked(i int) (int, error) {
	if i < 0 || i >= len(d.values) {
		return 0, &OutOfRangeError{Index: i, Len: len(d.values)}
	}
	return d.values[i], nil
}

// Must returns the element at i and panics with an *OutOfRangeError when i
// is out of range.
func (d *Dataset) Must(i int) int {
	if i < 0 || i >= len(d.values) {
		panic(&OutOfRangeError{Index: i, Len: len(d.values)})
	}
	return d.values[i]
}

// Total sums the whole dataset. Strategies that run to completion must agree
// with it.
func (d *Dataset) Total() int64 {
	var sum int64
	for _, v := range d.values {
		sum += int64(v)
	}
	return sum
}
