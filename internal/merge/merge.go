// Package merge implements sentinel-tailed two-way and four-way merges,
// plus bounds-checked variants for runs that share a backing array. Each
// sentinel-tailed input run's element immediately past its end is
// overwritten with math.MaxInt32 before the merge, so the main loop runs
// for exactly total iterations with no bounds check. Callers must reserve
// that trailing slot for every run passed in. Two and Four have no caller
// within this module outside of tests; TwoBounded and FourBounded are
// what internal/parallel's merge cascade calls.
package merge

import "math"

const sentinel = int32(math.MaxInt32)

// Two merges a (length na) and b (length nb) into out (length na+nb).
// a[na] and b[nb] must be valid, writable slots: they are overwritten
// with the sentinel value before merging.
func Two(a []int32, na int, b []int32, nb int, out []int32) {
	a[na] = sentinel
	b[nb] = sentinel

	var i, j int
	total := na + nb
	for k := 0; k < total; k++ {
		if a[i] <= b[j] {
			out[k] = a[i]
			i++
		} else {
			out[k] = b[j]
			j++
		}
	}
}

// Four merges four sorted runs a, b, c, d (lengths na, nb, nc, nd) into
// out, using a two-level tournament: min(a,b), min(c,d), then the overall
// min. Each run's one-past-the-end slot is overwritten with the sentinel.
func Four(a []int32, na int, b []int32, nb int, c []int32, nc int, d []int32, nd int, out []int32) {
	a[na] = sentinel
	b[nb] = sentinel
	c[nc] = sentinel
	d[nd] = sentinel

	var i, j, k, l int
	total := na + nb + nc + nd
	for m := 0; m < total; m++ {
		var minAB, minCD int32
		var fromA, fromC bool

		if a[i] <= b[j] {
			minAB, fromA = a[i], true
		} else {
			minAB, fromA = b[j], false
		}

		if c[k] <= d[l] {
			minCD, fromC = c[k], true
		} else {
			minCD, fromC = d[l], false
		}

		if minAB <= minCD {
			out[m] = minAB
			if fromA {
				i++
			} else {
				j++
			}
		} else {
			out[m] = minCD
			if fromC {
				k++
			} else {
				l++
			}
		}
	}
}

// TwoBounded merges a and b into out using ordinary bounds-checked index
// comparisons, with no sentinel write. Unlike Two, it is safe to call when
// a and b are adjacent runs within the same backing array (where a's
// one-past-the-end slot aliases b's first element): the cascade merge in
// internal/parallel uses this instead of Two for exactly that reason.
func TwoBounded(a, b, out []int32) {
	na, nb := len(a), len(b)
	var i, j int
	for k := 0; k < na+nb; k++ {
		switch {
		case i >= na:
			out[k] = b[j]
			j++
		case j >= nb:
			out[k] = a[i]
			i++
		case a[i] <= b[j]:
			out[k] = a[i]
			i++
		default:
			out[k] = b[j]
			j++
		}
	}
}

// FourBounded merges four sorted runs using the same two-level tournament
// as Four, but with ordinary bounds checks instead of sentinel writes, so
// it is safe for adjacent in-place runs.
func FourBounded(a, b, c, d, out []int32) {
	na, nb, nc, nd := len(a), len(b), len(c), len(d)
	var i, j, k, l int

	head := func(idx, n int, s []int32) (int32, bool) {
		if idx >= n {
			return 0, false
		}
		return s[idx], true
	}

	for m := 0; m < na+nb+nc+nd; m++ {
		av, aok := head(i, na, a)
		bv, bok := head(j, nb, b)
		cv, cok := head(k, nc, c)
		dv, dok := head(l, nd, d)

		var minAB int32
		var fromA, haveAB bool
		switch {
		case aok && bok:
			if av <= bv {
				minAB, fromA = av, true
			} else {
				minAB, fromA = bv, false
			}
			haveAB = true
		case aok:
			minAB, fromA, haveAB = av, true, true
		case bok:
			minAB, fromA, haveAB = bv, false, true
		}

		var minCD int32
		var fromC, haveCD bool
		switch {
		case cok && dok:
			if cv <= dv {
				minCD, fromC = cv, true
			} else {
				minCD, fromC = dv, false
			}
			haveCD = true
		case cok:
			minCD, fromC, haveCD = cv, true, true
		case dok:
			minCD, fromC, haveCD = dv, false, true
		}

		switch {
		case haveAB && (!haveCD || minAB <= minCD):
			out[m] = minAB
			if fromA {
				i++
			} else {
				j++
			}
		default:
			out[m] = minCD
			if fromC {
				k++
			} else {
				l++
			}
		}
	}
}
