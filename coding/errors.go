package coding

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-coding/dyn"
)

// ErrNilValue is returned when there is nothing to encode or decode.
var ErrNilValue = errors.New("coding: nil value")

// ContractError is the panic value for broken usage invariants. It is never
// returned.
type ContractError struct {
	Op   string
	Path Path
	Msg  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("coding: %s at %s: %s", e.Op, e.Path, e.Msg)
}

// UnsupportedTypeError is returned when a compound encode or decode is given
// a value which is neither a date nor Encodable/Decodable.
type UnsupportedTypeError struct {
	Path   Path
	GoType string
	Encode bool
}

func (e *UnsupportedTypeError) Error() string {
	what := "decode into"
	if e.Encode {
		what = "encode"
	}
	return fmt.Sprintf("coding: cannot %s %s at %s", what, e.GoType, e.Path)
}

// DateError is returned when a date is decoded from a value the runtime
// cannot interpret as a date.
type DateError struct {
	Path Path
	Kind dyn.Kind
}

func (e *DateError) Error() string {
	return fmt.Sprintf("coding: no date in %s value at %s", e.Kind, e.Path)
}
