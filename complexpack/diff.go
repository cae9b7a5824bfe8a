package complexpack

// forwardDiff applies §4.4 step 3's first- or second-order spatial
// differencing to ifld in place. It returns v1 (and v2 for order 2), the
// original values at the positions the recurrence zeroes out, and msd, the
// running minimum of the differenced region [order:n) once it has been
// subtracted back out of that region so every residual there is
// non-negative. ifld[0:order) is left as zero and still takes part in group
// partitioning and packing like any other value — only v1/v2/msd are
// carried separately in the template header.
func forwardDiff(ifld []int64, order int) (v1, v2, msd int64) {
	n := len(ifld)
	if n == 0 {
		return 0, 0, 0
	}

	switch order {
	case 1:
		v1 = ifld[0]
		for j := n - 1; j >= 1; j-- {
			ifld[j] -= ifld[j-1]
		}
		ifld[0] = 0
	case 2:
		if n < 2 {
			v1 = ifld[0]
			ifld[0] = 0

			return v1, 0, 0
		}
		v1, v2 = ifld[0], ifld[1]
		for j := n - 1; j >= 2; j-- {
			ifld[j] -= 2*ifld[j-1] - ifld[j-2]
		}
		ifld[0], ifld[1] = 0, 0
	default:
		return 0, 0, 0
	}

	if order >= n {
		return v1, v2, 0
	}

	msd = ifld[order]
	for _, v := range ifld[order:] {
		if v < msd {
			msd = v
		}
	}
	for j := order; j < n; j++ {
		ifld[j] -= msd
	}

	return v1, v2, msd
}

// inverseDiff undoes forwardDiff: it adds msd back into the differenced
// region, restores ifld[0:order) from v1/v2, and runs the recurrence
// forward to recover the original quantized field.
func inverseDiff(ifld []int64, order int, v1, v2, msd int64) {
	n := len(ifld)
	if n == 0 {
		return
	}

	for j := order; j < n && order > 0; j++ {
		ifld[j] += msd
	}

	switch order {
	case 1:
		ifld[0] = v1
		for j := 1; j < n; j++ {
			ifld[j] += ifld[j-1]
		}
	case 2:
		if n < 2 {
			ifld[0] = v1

			return
		}
		ifld[0], ifld[1] = v1, v2
		for j := 2; j < n; j++ {
			ifld[j] += 2*ifld[j-1] - ifld[j-2]
		}
	}
}
