package response

import (
	"fmt"
	"io"
)

// ────────────────────────────────────────────────────────────────────────────
// Console writers
// ────────────────────────────────────────────────────────────────────────────

// Success writes a confirmation line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Fail writes the message for code on its own line.
func Fail(w io.Writer, code ErrCode) {
	fmt.Fprintln(w, GetMessage(code))
}

// FailWithDetail writes the message for code followed by the underlying error.
func FailWithDetail(w io.Writer, code ErrCode, err error) {
	fmt.Fprintf(w, "%s: %v\n", GetMessage(code), err)
}
