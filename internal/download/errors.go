package download

import "errors"

// ErrEngine matches every *EngineError via errors.Is
var ErrEngine = errors.New("download engine failed")

// EngineError wraps anything the engine raised. Its message is the engine's
// own text so it can be shown to the user verbatim.
type EngineError struct {
	URL string
	Err error
}

func (e *EngineError) Error() string {
	if e.Err == nil {
		return ErrEngine.Error()
	}
	return e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrEngine) true for any EngineError
func (e *EngineError) Is(target error) bool {
	return target == ErrEngine
}
