package render

import (
	"github.com/gdamore/tcell/v2"
	search "github.com/kk-code-lab/mpl/internal/search"
	textutil "github.com/kk-code-lab/mpl/internal/textutil"
)

// drawTextLine draws text from startX, clipped to maxWidth columns, and
// returns the column after the last drawn cell. Zero-width runes are attached
// to the preceding cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := textutil.RuneWidth(mainc)
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && textutil.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func (r *Renderer) drawStyledRune(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}

	width := textutil.RuneWidth(ru)
	if width <= 0 {
		width = 1
	}
	if x+width > maxX {
		return maxX
	}

	r.screen.SetContent(x, y, ru, nil, style)
	for w := 1; w < width; w++ {
		r.screen.SetContent(x+w, y, ' ', nil, style)
	}
	return x + width
}

// drawHighlightedText draws text with the runes covered by spans in
// highlightStyle.
func (r *Renderer) drawHighlightedText(startX, y, maxX int, text string, spans []search.MatchSpan, baseStyle, highlightStyle tcell.Style) int {
	x := startX
	spanIdx := 0

	for idx, ru := range []rune(text) {
		if x >= maxX {
			break
		}
		for spanIdx < len(spans) && idx >= spans[spanIdx].End {
			spanIdx++
		}

		style := baseStyle
		if spanIdx < len(spans) && idx >= spans[spanIdx].Start && idx < spans[spanIdx].End {
			style = highlightStyle
		}
		x = r.drawStyledRune(x, y, maxX, ru, style)
	}
	return x
}

func (r *Renderer) fillLine(startX, y, maxX int, style tcell.Style) {
	for x := startX; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
