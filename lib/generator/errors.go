package generator

import (
	"errors"
	"fmt"

	"github.com/fosdem/glslbind/lib/codegen"
	"github.com/fosdem/glslbind/lib/shadertype"
)

// Kind classifies why a shader pair failed.
type Kind int

const (
	DiscoveryError Kind = iota
	PairingError
	CompileError
	UnsupportedTypeError
	UnsupportedSizeError
	IdentifierError
	EmitIOError
	FormatterError
)

// Kinds lists every kind, in declaration order.
var Kinds = []Kind{
	DiscoveryError,
	PairingError,
	CompileError,
	UnsupportedTypeError,
	UnsupportedSizeError,
	IdentifierError,
	EmitIOError,
	FormatterError,
}

var kindNames = map[Kind]string{
	DiscoveryError:       "DiscoveryError",
	PairingError:         "PairingError",
	CompileError:         "CompileError",
	UnsupportedTypeError: "UnsupportedTypeError",
	UnsupportedSizeError: "UnsupportedSizeError",
	IdentifierError:      "IdentifierError",
	EmitIOError:          "EmitIOError",
	FormatterError:       "FormatterError",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PairError is the error returned for a failed shader pair.
type PairError struct {
	Pair string
	Kind Kind
	Err  error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pair, e.Kind, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first PairError in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe *PairError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

func emitKind(err error) Kind {
	var typeErr *shadertype.UnsupportedTypeError
	var sizeErr *codegen.UnsupportedSizeError
	var identErr *codegen.IdentifierError
	switch {
	case errors.As(err, &typeErr):
		return UnsupportedTypeError
	case errors.As(err, &sizeErr):
		return UnsupportedSizeError
	case errors.As(err, &identErr):
		return IdentifierError
	default:
		return EmitIOError
	}
}
