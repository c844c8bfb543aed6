package coding

import "errors"

var (
	errCellUnset = errors.New("value was never set")
	errCellSet   = errors.New("value was already set")
)

// cell holds a value which may be set at most once.
type cell[T any] struct {
	v   T
	set bool
}

func (c *cell[T]) Set(v T) error {
	if c.set {
		return errCellSet
	}
	c.v = v
	c.set = true
	return nil
}

func (c *cell[T]) Get() (T, error) {
	if !c.set {
		var zero T
		return zero, errCellUnset
	}
	return c.v, nil
}

func (c *cell[T]) IsSet() bool {
	return c.set
}
