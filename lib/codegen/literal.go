package codegen

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// SourceLiteral returns a Go string literal whose value is exactly src.
// A raw literal is used when src can be one: raw literals cannot hold a
// backquote, lose carriage returns, and the Go scanner rejects NUL, BOM
// and invalid UTF-8. Otherwise the text is quoted one line at a time and
// the pieces joined with +.
func SourceLiteral(src string) string {
	if canBeRaw(src) {
		return "`" + src + "`"
	}

	var pieces []string
	for len(src) > 0 {
		i := strings.IndexByte(src, '\n')
		if i < 0 {
			i = len(src) - 1
		}
		pieces = append(pieces, strconv.Quote(src[:i+1]))
		src = src[i+1:]
	}
	return strings.Join(pieces, " +\n\t")
}

func canBeRaw(src string) bool {
	return utf8.ValidString(src) &&
		!strings.ContainsAny(src, "`\r\x00\uFEFF")
}
