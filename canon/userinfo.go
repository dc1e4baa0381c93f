package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// CanonicalizeUserInfo writes "user[:password]@".
// Nothing is written when both parts are absent or empty. A present password
// always writes the ':' separator, even when it is empty.
func CanonicalizeUserInfo[T constraints.Byteseq](
	spec T,
	username, password parse.Component,
	out *Buffer,
) (outUser, outPass parse.Component, ok bool) {
	if username.Len <= 0 && password.Len <= 0 {
		return parse.Absent(), parse.Absent(), true
	}

	ok = true
	outUser.Begin = out.Len()
	if username.Len > 0 {
		ok = appendStringOfType(spec, username, charUserinfo, out)
	}
	outUser.Len = out.Len() - outUser.Begin

	outPass = parse.Absent()
	if password.IsValid() {
		out.Push(':')
		outPass.Begin = out.Len()
		if password.Len > 0 {
			ok = appendStringOfType(spec, password, charUserinfo, out) && ok
		}
		outPass.Len = out.Len() - outPass.Begin
	}

	out.Push('@')
	return outUser, outPass, ok
}
