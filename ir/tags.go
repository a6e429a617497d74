package ir

import "strings"

// TagPrefix is the standard "tag:yaml.org,2002:" handle that "!!" expands to.
const TagPrefix = "tag:yaml.org,2002:"

const (
	NullTag      = TagPrefix + "null"
	BoolTag      = TagPrefix + "bool"
	IntTag       = TagPrefix + "int"
	FloatTag     = TagPrefix + "float"
	StrTag       = TagPrefix + "str"
	TimestampTag = TagPrefix + "timestamp"
	BinaryTag    = TagPrefix + "binary"
	MapTag       = TagPrefix + "map"
	SeqTag       = TagPrefix + "seq"
	MergeTag     = TagPrefix + "merge"
)

// LongTag expands the "!!" secondary handle. Other tags, including
// local "!foo" tags, are returned as is.
func LongTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		return TagPrefix + tag[2:]
	}
	return tag
}

// ShortTag is the inverse of LongTag.
func ShortTag(tag string) string {
	if strings.HasPrefix(tag, TagPrefix) {
		return "!!" + tag[len(TagPrefix):]
	}
	return tag
}

// IsUntagged reports whether tag asks for implicit resolution.
func IsUntagged(tag string) bool {
	return tag == "" || tag == "?"
}

// IsNonSpecific reports whether tag is the "!" non-specific tag, which
// forces a scalar to be a string.
func IsNonSpecific(tag string) bool {
	return tag == "!"
}
