package chipmunk

import "math/bits"

// HVCTree is a binary Merkle tree over HOTS public keys, built with the HVC
// two-to-one compression function (§4.7). Nodes are stored level-order, one
// slice per level, leaves first — the same layout the teacher's own
// hash-tree code uses for its authentication paths, generalized here to an
// arbitrary (possibly padded) leaf count instead of a fixed tree height.
type HVCTree struct {
	levels [][]PolyTime // levels[0] = leaves, levels[len(levels)-1] = {root}
}

// BuildHVCTree builds a tree over leaves, padding with hvcPadLeaf up to the
// next power of two if necessary. It returns InvalidArgument if leaves is
// empty.
func BuildHVCTree(leaves []PolyTime) (*HVCTree, error) {
	if len(leaves) == 0 {
		return nil, errorf(InvalidArgument, "BuildHVCTree: no leaves")
	}
	n := 1
	for n < len(leaves) {
		n <<= 1
	}
	padded := make([]PolyTime, n)
	copy(padded, leaves)
	for i := len(leaves); i < n; i++ {
		padded[i] = hvcPadLeaf
	}

	height := bits.TrailingZeros(uint(n))
	levels := make([][]PolyTime, height+1)
	levels[0] = padded
	for l := 0; l < height; l++ {
		cur := levels[l]
		next := make([]PolyTime, len(cur)/2)
		for i := range next {
			next[i] = hvcCompress(cur[2*i], cur[2*i+1])
		}
		levels[l+1] = next
	}
	return &HVCTree{levels: levels}, nil
}

// Root returns the tree's root node.
func (t *HVCTree) Root() PolyTime {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// GenProof returns the authentication path for leaf index, ordered from the
// leaf's sibling up to the child of the root (§4.7).
func (t *HVCTree) GenProof(index int) ([]PolyTime, error) {
	numLeaves := len(t.levels[0])
	if index < 0 || index >= numLeaves {
		return nil, errorf(InvalidArgument, "GenProof: index %d out of range [0, %d)", index, numLeaves)
	}
	path := make([]PolyTime, 0, len(t.levels)-1)
	idx := index
	for l := 0; l < len(t.levels)-1; l++ {
		sibling := idx ^ 1
		path = append(path, t.levels[l][sibling])
		idx >>= 1
	}
	return path, nil
}

// VerifyHVCPath recomputes the root from leaf, index, and an authentication
// path produced by GenProof, and reports whether it matches root.
func VerifyHVCPath(leaf PolyTime, index int, path []PolyTime, root PolyTime) bool {
	cur := leaf
	idx := index
	for _, sibling := range path {
		if idx&1 == 0 {
			cur = hvcCompress(cur, sibling)
		} else {
			cur = hvcCompress(sibling, cur)
		}
		idx >>= 1
	}
	return polyEqual(cur, root)
}
