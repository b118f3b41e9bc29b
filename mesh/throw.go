package mesh

import "github.com/pkg/errors"

// Threading errors up through the construction and subdivision call chains
// would add noise to every signature for conditions that are always caller
// bugs. Instead we panic, and the public API recovers to convert to an
// error.

type MeshError error

// Panic with a MeshError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandleMeshPanicRecover converts a recovered mesh panic into an error.
// Foreign panics are re-raised.
func HandleMeshPanicRecover(r interface{}) error {
	if r != nil {
		if meshError, ok := r.(MeshError); ok {
			return meshError
		}
		panic(r)
	}
	return nil
}
