package decode

import (
	"encoding/base64"
	"strings"

	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// DecodeBytes base64-decodes a ByteString token's payload. The lexer has
// already validated the character set and the four-multiple length; here we
// just strip the b64 prefix, quotes, optional parens, and any embedded
// whitespace from the multi-line form, and hand the rest to the standard
// base64 codec.
func DecodeBytes(tok token.Token) ([]byte, *diag.Diagnostic) {
	v := tok.Value
	// v = b64"..." or b64"( ... )"
	inner := v[4 : len(v)-1] // strip b64" and trailing quote
	if len(inner) > 0 && inner[0] == '(' {
		inner = inner[1 : len(inner)-1]
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' {
			continue
		}
		b.WriteByte(c)
	}
	out, err := base64.StdEncoding.DecodeString(b.String())
	if err != nil {
		return nil, diag.New(diag.EncodingError, tok.Start, tok.End, "invalid base64 payload: %s", err)
	}
	return out, nil
}
