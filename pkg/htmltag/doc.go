// Package htmltag programmatically builds HTML tag strings and static asset
// include links with optional cache busting.
//
// The renderer is deliberately minimal: attribute values get their double
// quotes escaped and nothing more. It is meant for assembling markup from
// trusted values, not for rendering user input.
//
// # Tags
//
//	htmltag.Tag("div", "Hello, world.", nil)
//	// <div>Hello, world.</div>
//
//	htmltag.SelfClosingTag("meta", htmltag.Attrs{htmltag.A("charset", "utf-8")})
//	// <meta charset="utf-8" />
//
// Attributes render in slice order; a true value renders the attribute
// bare, as in <option checked>.
//
// # Asset Links
//
// JavascriptLink and StylesheetLink wrap Tag for the two common include
// elements and can append a cache-busting query value derived from the
// asset file:
//
//	s, err := htmltag.JavascriptLink("/static/js/core.js",
//		htmltag.WithCacheBust(htmltag.BustMD5, "static/js/core.js"),
//	)
//	// <script src="/static/js/core.js?0f343b0931126a20f133d67c2b018a3b" ...
//
// The mtime and md5 methods read the filesystem, so each Buster memoizes
// their results per path in a bounded recently-used cache.
package htmltag
