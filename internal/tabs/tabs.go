// Package tabs builds the page contents and menu titles shown by the app,
// and serves them to both the pager and the menu strip.
package tabs

import (
	"fmt"
	"unicode/utf8"

	"github.com/depeter/pagestrip/internal/jellyfin"
	"github.com/depeter/pagestrip/internal/pager"
)

// fallbackGlyphWidth estimates text width when no measure func is set.
const fallbackGlyphWidth = 8

// Translator resolves message keys.
type Translator interface {
	String(key string) string
	Plural(key string, count int) string
}

// Content is what one page shows.
type Content struct {
	Title   string
	Summary string
	Lines   []string
	Empty   string
}

// Source serves a fixed set of tabs to a pager and a menu strip.
type Source struct {
	Tabs        []*Content
	Measure     func(text string) float64
	CellPadding float64
}

func (s *Source) PageCount() int              { return len(s.Tabs) }
func (s *Source) PageAt(index int) pager.Page { return s.Tabs[index] }
func (s *Source) ItemCount() int              { return len(s.Tabs) }
func (s *Source) CellAt(index int) any        { return s.Tabs[index].Title }

// WidthAt is the measured title width plus horizontal padding.
func (s *Source) WidthAt(index int) float64 {
	title := s.Tabs[index].Title
	var w float64
	if s.Measure != nil {
		w = s.Measure(title)
	} else {
		w = float64(utf8.RuneCountInString(title) * fallbackGlyphWidth)
	}
	return w + s.CellPadding
}

// Static builds one empty page per title key.
func Static(keys []string, tr Translator) []*Content {
	out := make([]*Content, 0, len(keys))
	for _, k := range keys {
		out = append(out, &Content{
			Title: tr.String(k),
			Empty: tr.String("empty_page"),
		})
	}
	return out
}

// FromLibraries builds one page per Jellyfin library listing its latest items.
func FromLibraries(libs []jellyfin.Library, tr Translator) []*Content {
	out := make([]*Content, 0, len(libs))
	for _, lib := range libs {
		c := &Content{
			Title:   lib.Name,
			Summary: tr.Plural("page_items", len(lib.Latest)),
			Empty:   tr.String("empty_library"),
		}
		for _, item := range lib.Latest {
			c.Lines = append(c.Lines, itemLine(item))
		}
		out = append(out, c)
	}
	return out
}

func itemLine(item jellyfin.MediaItem) string {
	name := item.Name
	if item.SeriesName != "" {
		name = item.SeriesName + " · " + name
	}
	if item.Year > 0 {
		return fmt.Sprintf("%s (%d)", name, item.Year)
	}
	return name
}
