// Package maputil extracts groups of fields from maps in one call, for the
// common request-parameter pattern where several keys are mandatory and
// several more are optional.
//
//	vals, err := maputil.GetMany(params, []string{"uid"}, []string{"limit"})
//	if err != nil {
//		// a required key was missing
//	}
//	uid, limit := vals[0], vals[1]
//
// PopMany does the same while removing the keys from the map, and OneOf
// picks the first present key out of a list of alternatives.
package maputil
