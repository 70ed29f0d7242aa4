package memory

import (
	"cmp"
	"slices"
)

func sortRows[T any](rows []T, id func(T) int64, less func(a, b T) int) {
	slices.SortFunc(rows, func(a, b T) int {
		if less != nil {
			if c := less(a, b); c != 0 {
				return c
			}
		}
		return cmp.Compare(id(a), id(b))
	})
}
