package lisp

import (
	"bytes"
	"strconv"
	"strings"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	`"`, `\"`,
)

// PrintStr renders v as text.  In readable mode string contents are escaped
// and wrapped in quotes so the output can be read back; otherwise strings
// render raw.  Functions render as an opaque placeholder and never leak
// their captured environment.
func PrintStr(v *LVal, readable bool) string {
	switch v.Type {
	case LNil:
		return "nil"
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LNumber:
		return strconv.FormatInt(v.Int, 10)
	case LSymbol:
		return v.Str
	case LString:
		if readable {
			return `"` + stringEscaper.Replace(v.Str) + `"`
		}
		return v.Str
	case LKeyword:
		return ":" + v.Str
	case LList:
		return printSeq(v, "(", ")", readable)
	case LVector:
		return printSeq(v, "[", "]", readable)
	case LMap:
		return printSeq(v, "{", "}", readable)
	case LFun:
		return "#<function>"
	case LError:
		return v.Err.Error()
	default:
		return "#<invalid>"
	}
}

func printSeq(v *LVal, left string, right string, readable bool) string {
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(PrintStr(c, readable))
	}
	buf.WriteString(right)
	return buf.String()
}
