package htmltag

import "strings"

// LinkOption configures JavascriptLink and StylesheetLink.
type LinkOption func(*linkConfig)

type linkConfig struct {
	content    string
	extraAttrs Attrs
	bustMethod BustMethod
	bustPath   string
	buster     *Buster
}

// WithContent sets the element's inner content. Default is empty.
func WithContent(content string) LinkOption {
	return func(c *linkConfig) {
		c.content = content
	}
}

// WithAttrs appends extra attributes after the standard ones.
func WithAttrs(attrs Attrs) LinkOption {
	return func(c *linkConfig) {
		c.extraAttrs = attrs
	}
}

// WithCacheBust appends a cache-busting query value derived from the asset
// at srcPath using the given method. srcPath may be empty for
// BustImportTime.
func WithCacheBust(method BustMethod, srcPath string) LinkOption {
	return func(c *linkConfig) {
		c.bustMethod = method
		c.bustPath = srcPath
	}
}

// WithBuster uses a specific Buster instead of the process-wide one.
func WithBuster(b *Buster) LinkOption {
	return func(c *linkConfig) {
		c.buster = b
	}
}

// JavascriptLink builds a <script> include for srcURL, optionally cache
// busted:
//
//	htmltag.JavascriptLink("/static/js/core.js")
//	// <script src="/static/js/core.js" type="text/javascript"></script>
func JavascriptLink(srcURL string, opts ...LinkOption) (string, error) {
	cfg := applyLinkOptions(opts)

	srcURL, err := cfg.bust(srcURL)
	if err != nil {
		return "", err
	}

	attrs := append(Attrs{
		A("src", srcURL),
		A("type", "text/javascript"),
	}, cfg.extraAttrs...)

	return Tag("script", cfg.content, attrs), nil
}

// StylesheetLink builds a <link rel="stylesheet"> include for hrefURL,
// optionally cache busted:
//
//	htmltag.StylesheetLink("/static/css/media.css")
//	// <link href="/static/css/media.css" rel="stylesheet"></link>
func StylesheetLink(hrefURL string, opts ...LinkOption) (string, error) {
	cfg := applyLinkOptions(opts)

	hrefURL, err := cfg.bust(hrefURL)
	if err != nil {
		return "", err
	}

	attrs := append(Attrs{
		A("href", hrefURL),
		A("rel", "stylesheet"),
	}, cfg.extraAttrs...)

	return Tag("link", cfg.content, attrs), nil
}

func applyLinkOptions(opts []LinkOption) *linkConfig {
	cfg := &linkConfig{buster: defaultBuster}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// bust appends the cache-busting value to the URL, reusing an existing
// query string when present.
func (c *linkConfig) bust(url string) (string, error) {
	if c.bustMethod == "" {
		return url, nil
	}

	suffix, err := c.buster.Bust(c.bustPath, c.bustMethod)
	if err != nil {
		return "", err
	}

	delim := "?"
	if strings.Contains(url, "?") {
		delim = "&"
	}
	return url + delim + suffix, nil
}
