package hasher

import "github.com/QianfengClarkShen/rtl-static-hash/internal/crc"

// Assignment records which polynomial a symbol was resolved under and the
// dense unique_id it was given.
type Assignment struct {
	PolynomialName string
	UniqueID       int
}

// assign runs the cascade over symbols, in the priority order given by
// polynomials. It preserves input order throughout: remaining is tracked
// as an index set rather than a symbol-keyed map, per the design notes on
// associative-container choice, so "original_input_position" in the
// id-allocation contract is never lost to map iteration order.
//
// The returned slice is indexed identically to symbols; every element is
// populated on success. On failure it returns *ConflictError with the
// number of symbols that could not be resolved under any polynomial.
func assign(symbols []Symbol, polynomials []*crc.Parameters, idMask uint64) ([]Assignment, error) {
	result := make([]Assignment, len(symbols))
	remaining := make([]int, len(symbols))
	for i := range symbols {
		remaining[i] = i
	}

	nextID := 0
	for _, p := range polynomials {
		h := crc.NewHash(p)

		buckets := make(map[uint64][]int, len(remaining))
		for _, idx := range remaining {
			v := h.CalculateCRC(symbols[idx]) & idMask
			buckets[v] = append(buckets[v], idx)
		}

		conflicted := make(map[int]struct{})
		for _, idxs := range buckets {
			if len(idxs) >= 2 {
				for _, idx := range idxs {
					conflicted[idx] = struct{}{}
				}
			}
		}

		var stillRemaining []int
		for _, idx := range remaining {
			if _, isConflicted := conflicted[idx]; isConflicted {
				stillRemaining = append(stillRemaining, idx)
				continue
			}
			result[idx] = Assignment{PolynomialName: p.Name, UniqueID: nextID}
			nextID++
		}
		remaining = stillRemaining

		if len(remaining) == 0 {
			break
		}
	}

	if len(remaining) > 0 {
		return nil, &ConflictError{Remaining: len(remaining)}
	}
	return result, nil
}
