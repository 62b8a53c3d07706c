package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"tiles/overworld.png", "tiles/overworld.png"},
		{"assets/tiles/overworld.png", "tiles/overworld.png"},
		{"/home/dev/rpg/assets/maps/main.tmx", "maps/main.tmx"},
		{"maps/../tiles/overworld.png", "tiles/overworld.png"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, CleanPath(c.in))
		})
	}
}

func TestEmbeddedContent(t *testing.T) {
	for _, p := range []string{"maps/main.tmx", "maps/cave.tmx"} {
		_, err := fs.Stat(FS(), p)
		require.NoError(t, err, p)
	}

	sheet, err := DecodeImage(FS(), "characters/female_18.png")
	require.NoError(t, err)
	assert.Equal(t, 96, sheet.Bounds().Dx())
	assert.Equal(t, 128, sheet.Bounds().Dy())

	tiles, err := DecodeImage(FS(), "assets/tiles/overworld.png")
	require.NoError(t, err)
	assert.Equal(t, 128, tiles.Bounds().Dx())
	assert.Equal(t, 64, tiles.Bounds().Dy())
}
