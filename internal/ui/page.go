package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/pagestrip/internal/pager"
	"github.com/depeter/pagestrip/internal/tabs"
)

// DrawPageContent draws a tab page: title, summary, then one row per line.
func DrawPageContent(dst *ebiten.Image, page pager.Page, x, y, w, h float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorBackground, false)

	c, ok := page.(*tabs.Content)
	if !ok {
		DrawTextCentered(dst, fmt.Sprint(page), x+w/2, y+h/2, FontSizeHeading, ColorTextSecondary)
		return
	}

	cx := x + PagePadding
	cy := y + PagePadding
	DrawText(dst, c.Title, cx, cy, FontSizeTitle, ColorText)
	cy += FontSizeTitle + PageGap

	if c.Summary != "" {
		DrawText(dst, c.Summary, cx, cy, FontSizeSmall, ColorTextSecondary)
		cy += FontSizeSmall + PageGap
	}

	if len(c.Lines) == 0 {
		DrawTextWrapped(dst, c.Empty, cx, cy, w-PagePadding*2, FontSizeBody, ColorTextMuted)
		return
	}

	rowH := FontSizeBody*1.4 + PageGap
	for i, line := range c.Lines {
		if cy+rowH > y+h-PagePadding {
			break
		}
		if i%2 == 0 {
			vector.DrawFilledRect(dst, float32(cx-8), float32(cy-6), float32(w-PagePadding*2+16), float32(rowH), ColorSurface, false)
		}
		DrawText(dst, line, cx, cy, FontSizeBody, ColorText)
		cy += rowH
	}
}
