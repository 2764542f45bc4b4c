package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jsondelta/jsondelta/value"
)

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		// The color package turns itself off for non-terminals.
		color.NoColor = false
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

var (
	delColor = color.New(color.FgRed)
	insColor = color.New(color.FgGreen)
	repColor = color.New(color.FgYellow)
)

// renderDelta prints a marshaled delta with the edit markers colorized:
// deletions red, insertions green, replacements yellow. With pairs set,
// two-element string arrays are treated as before/after pairs and rendered
// as an inline character diff.
func renderDelta(w io.Writer, v *value.Value, indent, escape string, pairs bool) {
	if escape == "" {
		escape = "$"
	}
	r := &renderer{w: w, indent: indent, pairs: pairs, escape: escape}
	r.value(v, 0, nil)
	fmt.Fprintln(w)
}

type renderer struct {
	w      io.Writer
	indent string
	pairs  bool
	escape string
}

func (r *renderer) value(v *value.Value, depth int, c *color.Color) {
	switch v.Type() {
	case value.ObjectType:
		r.object(v, depth, c)
	case value.ArrayType, value.SetType:
		if r.pairs && isStringPair(v) {
			r.stringPair(v.At(0).Str(), v.At(1).Str())
			return
		}
		r.array(v, depth, c)
	default:
		r.print(c, leaf(v))
	}
}

func (r *renderer) object(v *value.Value, depth int, c *color.Color) {
	if v.Len() == 0 {
		r.print(c, "{}")
		return
	}
	r.print(c, "{")
	for i, k := range v.Keys() {
		if i > 0 {
			r.print(c, ",")
		}
		r.newline(depth + 1)
		kc := c
		if kc == nil {
			kc = r.markerColor(k.Str())
		}
		r.print(kc, strconv.Quote(k.Str())+": ")
		r.value(v.Get(k), depth+1, kc)
	}
	r.newline(depth)
	r.print(c, "}")
}

func (r *renderer) array(v *value.Value, depth int, c *color.Color) {
	if v.Len() == 0 {
		r.print(c, "[]")
		return
	}
	r.print(c, "[")
	for i, e := range v.Elems() {
		if i > 0 {
			r.print(c, ",")
		}
		r.newline(depth + 1)
		r.value(e, depth+1, c)
	}
	r.newline(depth)
	r.print(c, "]")
}

// stringPair renders a before/after string pair as one inline diff.
func (r *renderer) stringPair(old, neu string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(old, neu, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	b.WriteByte('"')
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(delColor.Sprint(d.Text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(insColor.Sprint(d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	b.WriteByte('"')
	fmt.Fprint(r.w, b.String())
}

func (r *renderer) print(c *color.Color, s string) {
	if c != nil {
		c.Fprint(r.w, s)
		return
	}
	fmt.Fprint(r.w, s)
}

func (r *renderer) newline(depth int) {
	if r.indent == "" {
		fmt.Fprint(r.w, " ")
		return
	}
	fmt.Fprint(r.w, "\n"+strings.Repeat(r.indent, depth))
}

func (r *renderer) markerColor(key string) *color.Color {
	switch key {
	case r.escape + "delete", r.escape + "discard":
		return delColor
	case r.escape + "insert", r.escape + "add":
		return insColor
	case r.escape + "replace":
		return repColor
	default:
		return nil
	}
}

func isStringPair(v *value.Value) bool {
	return v.Type() == value.ArrayType && v.Len() == 2 &&
		v.At(0).Type() == value.StringType && v.At(1).Type() == value.StringType
}

func leaf(v *value.Value) string {
	switch v.Type() {
	case value.NullType:
		return "null"
	case value.BoolType:
		return strconv.FormatBool(v.Bool())
	case value.NumberType:
		if v.IsFloat() {
			return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
		}
		return strconv.FormatInt(v.Int64(), 10)
	case value.StringType:
		return strconv.Quote(v.Str())
	default:
		return v.String()
	}
}
