package coding

import (
	"errors"
	"testing"
)

func TestCell(t *testing.T) {
	var c cell[int]
	if c.IsSet() {
		t.Fatal("new cell is set")
	}
	if _, err := c.Get(); !errors.Is(err, errCellUnset) {
		t.Errorf("get on empty cell: %v", err)
	}
	if err := c.Set(0); err != nil {
		t.Fatal(err)
	}
	if !c.IsSet() {
		t.Error("cell not set after Set")
	}
	if err := c.Set(1); !errors.Is(err, errCellSet) {
		t.Errorf("second set: %v", err)
	}
	v, err := c.Get()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Errorf("got %d, want the first value", v)
	}
}
