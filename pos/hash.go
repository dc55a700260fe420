package pos

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

// Hash returns an order-sensitive hash of (X, Y): equal positions hash
// equally and swapping the components changes the hash.
func (p Pos[T]) Hash() uint64 {
	// Arrays hash in element order; a struct would be hashed as an unordered
	// set of fields.
	var v any = p.Tuple()
	if reflect.TypeFor[T]().Kind() == reflect.Uintptr {
		// hashstructure has no fixed-size encoding for uintptr.
		v = [2]uint64{uint64(p.X), uint64(p.Y)}
	}
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("pos: failed to hash %v: %v", p, err))
	}
	return h
}
