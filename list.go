package jsondelta

import (
	"github.com/jsondelta/jsondelta/debug"
	"github.com/jsondelta/jsondelta/syntax"
	"github.com/jsondelta/jsondelta/value"
)

// listDiff aligns two sequences by a similarity-weighted common
// subsequence. The score table maximizes total pairwise similarity, so a
// pair of nearly equal elements is preferred over dropping one and
// inserting the other.
func (d *Differ) listDiff(a, b *value.Value, depth int) (*value.Value, float64) {
	x, y := a.Elems(), b.Elems()
	m, n := len(x), len(y)

	type cell struct {
		delta *value.Value
		s     float64
	}
	memo := make(map[[2]int]cell, m*n)
	sub := func(i, j int) (*value.Value, float64) {
		k := [2]int{i, j}
		if c, ok := memo[k]; ok {
			return c.delta, c.s
		}
		delta, s := d.objDiff(x[i], y[j], depth+1)
		memo[k] = cell{delta, s}
		return delta, s
	}

	// c[i][j] is the best total similarity aligning x[:i] with y[:j].
	c := make([][]float64, m+1)
	for i := range c {
		c[i] = make([]float64, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			_, s := sub(i-1, j-1)
			best := c[i][j-1]
			if c[i-1][j] > best {
				best = c[i-1][j]
			}
			if c[i-1][j-1]+s > best {
				best = c[i-1][j-1] + s
			}
			c[i][j] = best
		}
	}

	// Backtrack from the far corner. Steps come out back-to-front.
	type step struct {
		sign int
		val  *value.Value
		pos  int
		s    float64
	}
	var steps []step
	i, j := m, n
	for i > 0 || j > 0 {
		if i > 0 && j > 0 {
			delta, s := sub(i-1, j-1)
			if s > 0 && c[i][j] == c[i-1][j-1]+s {
				steps = append(steps, step{0, delta, j - 1, s})
				i, j = i-1, j-1
				continue
			}
		}
		if j > 0 && (i == 0 || c[i][j-1] >= c[i-1][j]) {
			steps = append(steps, step{1, y[j-1], j - 1, 0})
			j--
			continue
		}
		steps = append(steps, step{-1, x[i-1], i - 1, 0})
		i--
	}

	var inserted, deleted []syntax.PosValue
	changed := value.NewObject()
	totS := 0.0
	for si := len(steps) - 1; si >= 0; si-- {
		st := steps[si]
		switch st.sign {
		case 1:
			inserted = append(inserted, syntax.PosValue{Pos: st.pos, Val: st.val})
		case -1:
			deleted = append(deleted, syntax.PosValue{Pos: st.pos, Val: st.val})
		default:
			// Matched pair; only imperfect matches carry a nested
			// delta, keyed by target position.
			if st.s < 1.0 {
				changed.Set(value.IdxKey(st.pos), st.val)
			}
			totS += st.s
		}
	}
	totN := float64(m + len(inserted))
	var s float64
	switch {
	case totS == totN:
		s = 1.0
	case totS == 0.0:
		s = 0.0
	default:
		s = totS / totN
	}
	if debug.List() {
		debug.Logf("list diff: %d matched, %d inserted, %d deleted, s=%v",
			m-len(deleted), len(inserted), len(deleted), s)
	}
	return d.syntax.EmitListDiff(a, b, s, inserted, changed, deleted), s
}
