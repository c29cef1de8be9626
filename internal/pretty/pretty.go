// Package pretty draws an ASCII hairpin for one inverted repeat: the left
// arms on top, pairing bars, and the right arms read backwards underneath.
package pretty

import (
	"fmt"
	"strings"

	"invrep/core/scoring"
	"invrep/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Unpaired spans longer than this print as ~N~. If <=0, use default (30).
	MaxGap int

	// Glyphs
	PairGlyph   string // default "|"
	WobbleGlyph string // default ":" for G-U and U-G
}

// DefaultOptions is the look used by the text writer.
var DefaultOptions = Options{
	MaxGap:      30,
	PairGlyph:   "|",
	WobbleGlyph: ":",
}

const linePrefix = "# "

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func isWobble(a, b byte) bool {
	a, b = a|0x20, b|0x20
	return (a == 'g' && b == 'u') || (a == 'u' && b == 'g')
}

func elide(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return fmt.Sprintf("~%d~", len(s))
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

// RenderRepeat renders r using the bases of seq (record coordinates).
func RenderRepeat(seq []byte, r engine.Repeat) string {
	return RenderRepeatWithOptions(seq, r, DefaultOptions)
}

// RenderRepeatWithOptions is RenderRepeat with a custom look.
func RenderRepeatWithOptions(seq []byte, r engine.Repeat, opt Options) string {
	b := r.Bounds()
	if len(seq) == 0 || b.Start < 0 || b.End > len(seq) {
		return linePrefix + "(pretty not available: sequence missing)\n\n"
	}
	maxGap := opt.MaxGap
	if maxGap <= 0 {
		maxGap = DefaultOptions.MaxGap
	}
	pair, wobble := opt.PairGlyph, opt.WobbleGlyph
	if pair == "" {
		pair = DefaultOptions.PairGlyph
	}
	if wobble == "" {
		wobble = DefaultOptions.WobbleGlyph
	}

	var top, mid, bot strings.Builder
	top.WriteString("5' ")
	mid.WriteString("   ")
	bot.WriteString("3' ")

	segs := r.Segments()
	for i, s := range segs {
		if i > 0 {
			prev := segs[i-1]
			tg := elide(string(seq[prev.Left.End:s.Left.Start]), maxGap)
			bg := elide(reverseString(string(seq[s.Right.End:prev.Right.Start])), maxGap)
			w := max(len(tg), len(bg))
			top.WriteString(pad(tg, w))
			mid.WriteString(strings.Repeat(" ", w))
			bot.WriteString(pad(bg, w))
		}
		left := seq[s.Left.Start:s.Left.End]
		right := reverseString(string(seq[s.Right.Start:s.Right.End]))
		top.Write(left)
		bot.WriteString(right)
		for k := range left {
			switch {
			case !scoring.Pairs(left[k], right[k]):
				mid.WriteByte(' ')
			case isWobble(left[k], right[k]):
				mid.WriteString(wobble)
			default:
				mid.WriteString(pair)
			}
		}
	}

	in := segs[len(segs)-1]
	loop := seq[in.Left.End:in.Right.Start]
	top.WriteString(`\`)
	bot.WriteString("/")
	fmt.Fprintf(&mid, ") loop %d", len(loop))
	if len(loop) > 0 && len(loop) <= maxGap {
		fmt.Fprintf(&mid, ": %s", loop)
	}

	var out strings.Builder
	for _, line := range []string{top.String(), mid.String(), bot.String()} {
		out.WriteString(linePrefix)
		out.WriteString(line)
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	return out.String()
}
