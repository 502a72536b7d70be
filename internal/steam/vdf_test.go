package steam_test

import (
	"strings"
	"testing"

	"lom/internal/steam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVDFNested(t *testing.T) {
	input := `"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.steam/steam"
		"label"		""
	}
	"1"
	{
		"path"		"/mnt/games/SteamLibrary"
	}
}
`
	parsed, err := steam.ParseVDF(strings.NewReader(input))
	require.NoError(t, err)

	lf := parsed.Child("libraryfolders")
	require.NotNil(t, lf)
	assert.Equal(t, "/home/user/.steam/steam", lf.Child("0").String("path"))
	assert.Equal(t, "/mnt/games/SteamLibrary", lf.Child("1").String("path"))
	assert.Nil(t, lf.Child("2"))
}

func TestParseVDFAppManifest(t *testing.T) {
	input := `"AppState"
{
	"appid"		"1142710"
	"name"		"Total War: WARHAMMER III"
	"installdir"		"Total War WARHAMMER III"
}
`
	parsed, err := steam.ParseVDF(strings.NewReader(input))
	require.NoError(t, err)

	state := parsed.Child("AppState")
	require.NotNil(t, state)
	assert.Equal(t, "1142710", state.String("appid"))
	assert.Equal(t, "Total War WARHAMMER III", state.String("installdir"))
}

func TestParseVDFEscapedQuote(t *testing.T) {
	input := `"root"
{
	"key"		"value with \" inside"
}
`
	parsed, err := steam.ParseVDF(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, `value with \" inside`, parsed.Child("root").String("key"))
}

func TestParseVDFTruncated(t *testing.T) {
	_, err := steam.ParseVDF(strings.NewReader(`"dangling"`))
	assert.Error(t, err)
}

func TestVDFMapAccessorsTolerateMissing(t *testing.T) {
	m := steam.VDFMap{"str": "v"}
	assert.Nil(t, m.Child("str"), "a string value is not a child map")
	assert.Empty(t, m.String("missing"))
}
