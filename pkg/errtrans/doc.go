// Package errtrans translates errors from one sentinel to another at API
// boundaries, so a dependency's error vocabulary does not leak into yours.
//
// Translate rewrites a single error; the Wrap variants decorate whole
// functions:
//
//	var ErrUserNotFound = errors.New("user not found")
//
//	findUser := errtrans.WrapFunc(repo.Find, sql.ErrNoRows, ErrUserNotFound)
//
//	if _, err := findUser(id); errors.Is(err, ErrUserNotFound) {
//		// sql.ErrNoRows never reaches this layer
//	}
//
// The original error stays wrapped in the chain, so errors.Is on the
// source sentinel still matches for callers that need the detail.
package errtrans
