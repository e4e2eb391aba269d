package tabs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/depeter/pagestrip/internal/jellyfin"
)

type fakeTranslator map[string]string

func (f fakeTranslator) String(key string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return key
}

func (f fakeTranslator) Plural(key string, count int) string {
	return fmt.Sprintf("%s:%d", key, count)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	tr := fakeTranslator{"tab_home": "Home", "empty_page": "Nothing"}
	tabs := Static([]string{"tab_home", "Movies"}, tr)
	require.Len(t, tabs, 2)
	require.Equal(t, &Content{Title: "Home", Empty: "Nothing"}, tabs[0])
	require.Equal(t, "Movies", tabs[1].Title)
}

func TestFromLibraries(t *testing.T) {
	t.Parallel()

	libs := []jellyfin.Library{
		{ID: "a", Name: "Movies", Latest: []jellyfin.MediaItem{
			{Name: "Heat", Year: 1995},
			{Name: "Untitled"},
		}},
		{ID: "b", Name: "Shows", Latest: []jellyfin.MediaItem{
			{Name: "Pilot", SeriesName: "Severance", Year: 2022},
		}},
		{ID: "c", Name: "Music"},
	}
	tabs := FromLibraries(libs, fakeTranslator{})
	require.Len(t, tabs, 3)
	require.Equal(t, []string{"Heat (1995)", "Untitled"}, tabs[0].Lines)
	require.Equal(t, "page_items:2", tabs[0].Summary)
	require.Equal(t, []string{"Severance · Pilot (2022)"}, tabs[1].Lines)
	require.Empty(t, tabs[2].Lines)
	require.Equal(t, "empty_library", tabs[2].Empty)
}

func TestSourceServesBothComponents(t *testing.T) {
	t.Parallel()

	src := &Source{
		Tabs:        Static([]string{"One", "Three"}, fakeTranslator{}),
		CellPadding: 20,
	}
	require.Equal(t, 2, src.PageCount())
	require.Equal(t, 2, src.ItemCount())
	require.Same(t, src.Tabs[1], src.PageAt(1))
	require.Equal(t, "Three", src.CellAt(1))
	require.Equal(t, 3*8+20.0, src.WidthAt(0))

	src.Measure = func(s string) float64 { return float64(len(s)) * 10 }
	require.Equal(t, 70.0, src.WidthAt(1))
}
