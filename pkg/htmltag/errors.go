package htmltag

import "errors"

var ErrUnknownBustMethod = errors.New("htmltag: unsupported cache busting method")
