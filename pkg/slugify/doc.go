// Package slugify converts arbitrary strings into URL-safe ASCII slugs.
//
// Input is decomposed with Unicode NFKD normalization, combining marks and
// remaining non-ASCII runes are stripped, and every run of non-word
// characters collapses into a single delimiter:
//
//	slugify.Slugify("Héllo, World!")                       // "hello-world"
//	slugify.Slugify("Crème Brûlée", slugify.Delimiter("_")) // "creme_brulee"
//
// Characters with no ASCII decomposition are dropped rather than
// transliterated, matching the behavior of encoding to ASCII with errors
// ignored.
package slugify
