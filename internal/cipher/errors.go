package cipher

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol    = errors.New("letter outside A-H")
	ErrInvalidWindow    = errors.New("invalid window position")
	ErrInvalidPlugboard = errors.New("invalid plugboard")
)

// PlugboardError describes why a plug specification was rejected.
type PlugboardError struct {
	Spec   string
	Pair   string
	Reason string
}

func (e *PlugboardError) Error() string {
	if e.Pair != "" {
		return fmt.Sprintf("plugboard %q: plug %s %s", e.Spec, e.Pair, e.Reason)
	}
	return fmt.Sprintf("plugboard %q: %s", e.Spec, e.Reason)
}

func (e *PlugboardError) Unwrap() error { return ErrInvalidPlugboard }
