// Package conv provides zero-copy view conversions for the string entry
// points of the search API.
//
// The returned views alias the input's backing storage. They exist so that
// the string convenience adapters behave byte-for-byte like their []byte
// counterparts without paying an allocation per call; misuse (writing through
// a view) is a programming error, not a checked condition.
package conv

import "unsafe"

// StringToBytes returns a []byte view of s without copying.
//
// The returned slice shares s's backing storage and must not be modified;
// strings are immutable and writing through the view corrupts them. Safe for
// the read-only scan loops in this module.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
