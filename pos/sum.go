package pos

import "iter"

// Sum folds ps by repeated addition starting from the origin.
// For floating point element types the result may depend on the order of ps.
func Sum[T Scalar](ps ...Pos[T]) Pos[T] {
	var acc Pos[T]
	for _, p := range ps {
		acc.AddAssign(p)
	}
	return acc
}

// SumPtrs is Sum over borrowed positions. ps must not contain nil.
func SumPtrs[T Scalar](ps []*Pos[T]) Pos[T] {
	var acc Pos[T]
	for _, p := range ps {
		acc.AddAssign(*p)
	}
	return acc
}

// SumSeq is Sum over an iterator.
func SumSeq[T Scalar](seq iter.Seq[Pos[T]]) Pos[T] {
	var acc Pos[T]
	for p := range seq {
		acc.AddAssign(p)
	}
	return acc
}
