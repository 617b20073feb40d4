package htmltag_test

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unstdkit/unstd/pkg/htmltag"
)

func writeAsset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.js")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuster(t *testing.T) {
	t.Run("importtime is stable per buster", func(t *testing.T) {
		b := htmltag.NewBuster()

		first, err := b.Bust("", htmltag.BustImportTime)
		require.NoError(t, err)
		second, err := b.Bust("ignored", htmltag.BustImportTime)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("mtime", func(t *testing.T) {
		path := writeAsset(t, "var x = 1;")
		info, err := os.Stat(path)
		require.NoError(t, err)

		got, err := htmltag.NewBuster().Bust(path, htmltag.BustMTime)
		require.NoError(t, err)
		assert.Equal(t, strconv.FormatInt(info.ModTime().Unix(), 10), got)
	})

	t.Run("md5", func(t *testing.T) {
		content := "var x = 1;"
		path := writeAsset(t, content)

		sum := md5.Sum([]byte(content))
		got, err := htmltag.NewBuster().Bust(path, htmltag.BustMD5)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(sum[:]), got)
	})

	t.Run("md5 result is memoized per path", func(t *testing.T) {
		path := writeAsset(t, "before")
		b := htmltag.NewBuster()

		first, err := b.Bust(path, htmltag.BustMD5)
		require.NoError(t, err)

		// Rewriting the file must not change the memoized digest.
		require.NoError(t, os.WriteFile(path, []byte("after"), 0o644))
		again, err := b.Bust(path, htmltag.BustMD5)
		require.NoError(t, err)
		assert.Equal(t, first, again)

		// A fresh buster sees the new contents.
		fresh, err := htmltag.NewBuster().Bust(path, htmltag.BustMD5)
		require.NoError(t, err)
		assert.NotEqual(t, first, fresh)
	})

	t.Run("missing file errors are not memoized", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "late.js")
		b := htmltag.NewBuster()

		_, err := b.Bust(path, htmltag.BustMD5)
		assert.Error(t, err)

		require.NoError(t, os.WriteFile(path, []byte("late"), 0o644))
		_, err = b.Bust(path, htmltag.BustMD5)
		assert.NoError(t, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := htmltag.CacheBuster("x", htmltag.BustMethod("sha512"))
		assert.ErrorIs(t, err, htmltag.ErrUnknownBustMethod)
	})
}

func TestJavascriptLink(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		got, err := htmltag.JavascriptLink("/static/js/core.js")
		require.NoError(t, err)
		assert.Equal(t, `<script src="/static/js/core.js" type="text/javascript"></script>`, got)
	})

	t.Run("with cache busting", func(t *testing.T) {
		path := writeAsset(t, "var x = 1;")
		b := htmltag.NewBuster()
		want, err := b.Bust(path, htmltag.BustMD5)
		require.NoError(t, err)

		got, err := htmltag.JavascriptLink("/static/js/core.js",
			htmltag.WithCacheBust(htmltag.BustMD5, path),
			htmltag.WithBuster(b),
		)
		require.NoError(t, err)
		assert.Contains(t, got, "/static/js/core.js?"+want)
	})

	t.Run("existing query string uses ampersand", func(t *testing.T) {
		got, err := htmltag.JavascriptLink("/core.js?v=2",
			htmltag.WithCacheBust(htmltag.BustImportTime, ""),
		)
		require.NoError(t, err)
		assert.Contains(t, got, "/core.js?v=2&")
	})

	t.Run("bust error propagates", func(t *testing.T) {
		_, err := htmltag.JavascriptLink("/core.js",
			htmltag.WithCacheBust(htmltag.BustMTime, filepath.Join(t.TempDir(), "missing.js")),
		)
		assert.Error(t, err)
	})

	t.Run("extra attributes", func(t *testing.T) {
		got, err := htmltag.JavascriptLink("/core.js",
			htmltag.WithAttrs(htmltag.Attrs{htmltag.A("defer", true)}),
		)
		require.NoError(t, err)
		assert.Equal(t, `<script src="/core.js" type="text/javascript" defer></script>`, got)
	})
}

func TestStylesheetLink(t *testing.T) {
	got, err := htmltag.StylesheetLink("/static/css/media.css")
	require.NoError(t, err)
	assert.Equal(t, `<link href="/static/css/media.css" rel="stylesheet"></link>`, got)
}
