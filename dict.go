package jsondelta

import (
	"github.com/jsondelta/jsondelta/value"
)

// dictDiff matches fields by key. A key present on both sides is worth
// between half a point and a full point depending on how similar its values
// are; removed and added keys are worth nothing.
func (d *Differ) dictDiff(a, b *value.Value, depth int) (*value.Value, float64) {
	removed := value.NewObject()
	added := value.NewObject()
	changed := value.NewObject()

	nMatched := 0
	sMatched := 0.0
	for _, k := range a.Keys() {
		v := a.Get(k)
		w := b.Get(k)
		if w == nil {
			removed.Set(k, v)
			continue
		}
		nMatched++
		delta, s := d.objDiff(v, w, depth+1)
		if s < 1.0 {
			changed.Set(k, delta)
		}
		sMatched += 0.5 + 0.5*s
	}
	for _, k := range b.Keys() {
		if !a.Has(k) {
			added.Set(k, b.Get(k))
		}
	}

	nTot := removed.Len() + nMatched + added.Len()
	s := 1.0
	if nTot != 0 {
		s = sMatched / float64(nTot)
	}
	return d.syntax.EmitDictDiff(a, b, s, added, changed, removed), s
}
