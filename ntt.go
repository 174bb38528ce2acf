package chipmunk

// forwardNTT transforms a in place from the time domain into the NTT domain,
// using iterative Cooley-Tukey decimation-in-time (§4.2). len(a) must equal
// r.n; callers are the PolyTime.NTT methods in poly.go, never external code,
// so that is an invariant here rather than a checked argument.
func (r *ring) forwardNTT(a []int32) {
	t := r.n
	for l := 0; l < int(r.logN); l++ {
		m := 1 << l
		ht := t / 2
		for i := 0; i < m; i++ {
			j1 := i * t
			if r.mont != nil {
				s := r.zetasMont[m+i]
				for j := j1; j < j1+ht; j++ {
					u := a[j]
					v := r.montReduce(int64(a[j+ht]) * int64(s))
					a[j] = r.barrett(int64(u) + int64(v))
					a[j+ht] = r.barrett(int64(u) + int64(r.q) - int64(v))
				}
			} else {
				s := r.zetas[m+i]
				for j := j1; j < j1+ht; j++ {
					u := a[j]
					v := r.barrett(int64(a[j+ht]) * int64(s))
					a[j] = r.barrett(int64(u) + int64(v))
					a[j+ht] = r.barrett(int64(u) + int64(r.q) - int64(v))
				}
			}
		}
		t = ht
	}
}

// inverseNTT transforms a in place from the NTT domain back into the time
// domain, using the Gentleman-Sande decimation-in-frequency dual of
// forwardNTT, followed by the single N^-1 scaling (§4.2). Output coefficients
// are centered into (-q/2, q/2].
func (r *ring) inverseNTT(a []int32) {
	t := 2
	for l := 0; l < int(r.logN); l++ {
		m := r.n >> uint(l+1)
		ht := t / 2
		for i := 0; i < m; i++ {
			j1 := i * t
			if r.mont != nil {
				s := r.zetasInvMont[m+i]
				for j := j1; j < j1+ht; j++ {
					u := a[j]
					v := a[j+ht]
					a[j] = r.barrett(int64(u) + int64(v))
					diff := r.barrett(int64(u) - int64(v) + int64(r.q))
					a[j+ht] = r.montReduce(int64(diff) * int64(s))
				}
			} else {
				s := r.zetasInv[m+i]
				for j := j1; j < j1+ht; j++ {
					u := a[j]
					v := a[j+ht]
					a[j] = r.barrett(int64(u) + int64(v))
					diff := r.barrett(int64(u) - int64(v) + int64(r.q))
					a[j+ht] = r.barrett(int64(diff) * int64(s))
				}
			}
		}
		t *= 2
	}
	for i := range a {
		var scaled int32
		if r.mont != nil {
			scaled = r.montMulPlain(a[i], r.nInv)
		} else {
			scaled = r.barrett(int64(a[i]) * int64(r.nInv))
		}
		a[i] = r.center(scaled)
	}
}

// pointwiseMul computes c[i] = a[i]*b[i] mod q for NTT-domain polynomials,
// using Montgomery multiplication when the ring opts in and ordinary
// Barrett-reduced multiplication otherwise (§4.3).
func (r *ring) pointwiseMul(c, a, b []int32) {
	for i := 0; i < r.n; i++ {
		if r.mont != nil {
			c[i] = r.montMulPlain(a[i], b[i])
		} else {
			c[i] = r.barrett(int64(a[i]) * int64(b[i]))
		}
	}
}
