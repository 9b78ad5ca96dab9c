package json5

// TokenKind identifies the lexical category of a Token emitted by the
// Tokenizer.
type TokenKind int

// Token kinds. Name is the unquoted-identifier form; keywords (true,
// false, null, NaN, Infinity) are reclassified to their dedicated kind at
// acceptance, per spec.md §3/§4.2.
const (
	TokObjOpen TokenKind = iota
	TokObjClose
	TokArrOpen
	TokArrClose
	TokComma
	TokColon
	TokString
	TokNumber
	TokNumberFloat
	TokBool
	TokName
	TokNull
	TokNaN
	TokInfinity
	TokEnd
)

var tokenKindNames = map[TokenKind]string{
	TokObjOpen:     "{",
	TokObjClose:    "}",
	TokArrOpen:     "[",
	TokArrClose:    "]",
	TokComma:       ",",
	TokColon:       ":",
	TokString:      "string",
	TokNumber:      "number",
	TokNumberFloat: "float",
	TokBool:        "bool",
	TokName:        "name",
	TokNull:        "null",
	TokNaN:         "NaN",
	TokInfinity:    "Infinity",
	TokEnd:         "end of input",
}

func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return "<unknown token>"
}

// Token is a single lexical unit. Text is a view into the Tokenizer's
// internal lexeme buffer: it is valid only until the next byte is pushed,
// the Tokenizer is reset, or Finish is called — callers that need to keep
// it must copy it (matching spec.md §3's "Token ... valid only until the
// tokenizer's next chunk").
type Token struct {
	Kind   TokenKind
	Text   []byte
	Line   int
	Column int

	// IntValue and FloatValue hold the numeric payload for TokNumber and
	// TokNumberFloat respectively.
	IntValue   int64
	FloatValue float64

	// Sign is the attached +/- for a signed name that resolved to null,
	// NaN or Infinity (spec.md's "name-sign"); it is 0 for any other token.
	Sign int
}

// IsKeyCandidate reports whether the token's kind is legal as an object
// key's lexical form: Name, String, or one of the reclassified keywords,
// all unsigned (spec.md §9: a signed key is UnexpectedToken).
func (t Token) IsKeyCandidate() bool {
	switch t.Kind {
	case TokName, TokString, TokNull, TokNaN, TokInfinity:
		return t.Sign == 0
	}
	return false
}
