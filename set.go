package jsondelta

import (
	"sort"

	"github.com/jsondelta/jsondelta/debug"
	"github.com/jsondelta/jsondelta/value"
)

// setDiff matches removed elements against added ones greedily, best pairs
// first, to estimate how much of the symmetric difference is really
// modification rather than turnover. The pairing only shapes the score; the
// emitted delta always discards every removed element and adds every added
// one.
//
// Greedy matching commits pairs in ranking order rather than solving an
// optimal assignment, so the score is a heuristic and swapping the inputs
// makes no symmetry promise. The ranking here is deterministic, pairs in
// insertion order under a stable sort, which in practice keeps the two
// directions in agreement.
func (d *Differ) setDiff(a, b *value.Value, depth int) (*value.Value, float64) {
	var removed, added []*value.Value
	for _, e := range a.Elems() {
		if !b.SetHas(e) {
			removed = append(removed, e)
		}
	}
	for _, e := range b.Elems() {
		if !a.SetHas(e) {
			added = append(added, e)
		}
	}
	if len(removed) == 0 && len(added) == 0 {
		return d.syntax.EmitSetDiff(a, b, 1.0, nil, nil), 1.0
	}

	type pair struct {
		s    float64
		x, y int
	}
	ranking := make([]pair, 0, len(removed)*len(added))
	for xi, x := range removed {
		for yi, y := range added {
			_, s := d.objDiff(x, y, depth+1)
			ranking = append(ranking, pair{s, xi, yi})
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].s > ranking[j].s })

	xLeft := len(removed)
	yLeft := len(added)
	xUsed := make([]bool, len(removed))
	yUsed := make([]bool, len(added))
	nCommon := a.Len() - len(removed)
	sCommon := float64(nCommon)
	for _, p := range ranking {
		if xUsed[p.x] || yUsed[p.y] {
			continue
		}
		xUsed[p.x] = true
		yUsed[p.y] = true
		xLeft--
		yLeft--
		sCommon += p.s
		nCommon++
		if xLeft == 0 || yLeft == 0 {
			break
		}
	}

	nTot := a.Len() + len(added)
	s := 1.0
	if nTot != 0 {
		s = sCommon / float64(nTot)
	}
	if debug.Set() {
		debug.Logf("set diff: %d removed, %d added, s=%v", len(removed), len(added), s)
	}
	return d.syntax.EmitSetDiff(a, b, s, added, removed), s
}
