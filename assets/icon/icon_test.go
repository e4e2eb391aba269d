package icon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	t.Parallel()

	imgs := Generate()
	require.Len(t, imgs, 2)
	require.Equal(t, image.Rect(0, 0, 64, 64), imgs[0].Bounds())
	require.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())
}

func TestGenerateDrawsIndicatorUnderMiddleTab(t *testing.T) {
	t.Parallel()

	img := generate(64).(*image.RGBA)
	require.Equal(t, accentBlue, img.RGBAAt(32, 19))
	require.Equal(t, darkBG, img.RGBAAt(2, 60))
}
