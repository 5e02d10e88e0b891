package glasses

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Instance is one problem: container capacities and the desired final levels,
// index-aligned.
type Instance struct {
	Capacities []int
	Targets    []int
}

// Len returns the number of containers.
func (in Instance) Len() int { return len(in.Capacities) }

// Normalize returns a copy without containers whose capacity is ≤ 0.
// Such containers can neither hold nor move water, so their targets are
// dropped with them.
func (in Instance) Normalize() Instance {
	out := Instance{
		Capacities: make([]int, 0, len(in.Capacities)),
		Targets:    make([]int, 0, len(in.Targets)),
	}
	for i, c := range in.Capacities {
		if c <= 0 {
			continue
		}
		out.Capacities = append(out.Capacities, c)
		if i < len(in.Targets) {
			out.Targets = append(out.Targets, in.Targets[i])
		}
	}

	return out
}

// Validate checks shape and bounds: equal lengths, 0 < capacity ≤
// MaxCapacity and 0 ≤ target ≤ capacity. Call it on a normalized instance.
func (in Instance) Validate() error {
	if len(in.Capacities) != len(in.Targets) {
		return fmt.Errorf("%w: %d capacities, %d targets",
			ErrLengthMismatch, len(in.Capacities), len(in.Targets))
	}
	for i, c := range in.Capacities {
		if c <= 0 || int64(c) > MaxCapacity {
			return fmt.Errorf("%w: container %d has capacity %d", ErrInvalidCapacity, i, c)
		}
		if t := in.Targets[i]; t < 0 || t > c {
			return fmt.Errorf("%w: container %d has capacity %d, target %d",
				ErrTargetOutOfRange, i, c, t)
		}
	}

	return nil
}

// ReadInstance parses the line-oriented instance format
//
//	n
//	cap_1 target_1
//	...
//	cap_n target_n
//
// Tokens may be separated by any whitespace. Containers with cap ≤ 0 are
// dropped. Trailing content after the n-th pair is ignored.
func ReadInstance(r io.Reader) (Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, what, sc.Text())
		}
		return v, nil
	}

	n, err := next("container count")
	if err != nil {
		return Instance{}, err
	}
	if n < 0 {
		return Instance{}, fmt.Errorf("%w: negative container count %d", ErrMalformedInput, n)
	}

	hint := min(n, 1<<10) // n is untrusted
	raw := Instance{Capacities: make([]int, 0, hint), Targets: make([]int, 0, hint)}
	for i := 1; i <= n; i++ {
		c, err := next(fmt.Sprintf("capacity %d", i))
		if err != nil {
			return Instance{}, err
		}
		t, err := next(fmt.Sprintf("target %d", i))
		if err != nil {
			return Instance{}, err
		}
		raw.Capacities = append(raw.Capacities, c)
		raw.Targets = append(raw.Targets, t)
	}

	return raw.Normalize(), nil
}
