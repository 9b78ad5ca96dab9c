package json5

import "fmt"

// pstate is the parser's frame state: what kind of token is legal next,
// given the container it is currently inside. This mirrors spec.md
// §4.3's named states (Root, ArrVal, ArrSep, ObjKey, ObjKeySep, ObjVal,
// ObjSep, End; pRoot also covers awaiting the root value) and the teacher's mode/value stack design in
// parser.go, adapted from a combined tokenizer+parser PDA into a
// token-driven grammar that sits on top of this package's Tokenizer.
type pstate int

const (
	pRoot pstate = iota
	pArrVal
	pArrSep
	pObjKey
	pObjKeySep
	pObjVal
	pObjSep
	pEnd
)

// maxDepth bounds container nesting, matching the teacher's depth limit
// in parser.go (a recursion/stack-exhaustion guard, not a spec requirement
// with a specific number attached).
const maxDepth = 1024

// frame is one entry of the parser's container stack: the container being
// filled, and the state to resume once its current member is complete.
type frame struct {
	container *Value
	isObject  bool
	key       []byte // captured for the property currently being parsed
	resume    pstate // pArrSep, pObjSep, or pEnd for the root: state to enter once this container closes
}

// Sink receives incremental notifications as a Parser builds a Value
// tree, realizing spec.md §5's optional streaming mode
// (begin_arr/begin_obj/end_container/begin_key/begin_index/set_value) for
// callers who want to react to structure without waiting for the whole
// document. A Parser with a nil Sink only builds the tree.
type Sink interface {
	BeginArray() error
	BeginObject() error
	EndContainer() error
	BeginIndex(i int) error
	BeginKey(key []byte) error
	SetValue(v *Value) error
}

// Parser turns a Token stream into a Value tree. It is driven by feeding
// it one Token at a time (typically forwarded directly from a
// Tokenizer's Emit callback); Decode composes the two into a single call.
type Parser struct {
	Sink Sink

	root   Value
	frames []*frame
	state  pstate
	err    error
	done   bool
}

// NewParser returns a Parser ready to receive tokens for a new document.
func NewParser() *Parser {
	return &Parser{}
}

// Reset returns the parser to its initial state so it can parse a new
// document; the Sink, if any, is preserved.
func (p *Parser) Reset() {
	p.root = Value{}
	p.frames = p.frames[:0]
	p.state = pRoot
	p.err = nil
	p.done = false
}

// LastError returns the error that put the parser into its terminal Error
// state, or nil if it is still running (or finished successfully).
func (p *Parser) LastError() error { return p.err }

// Done reports whether the parser has accepted a complete document (it
// has seen TokEnd and produced no error).
func (p *Parser) Done() bool { return p.done }

// Root returns a reference to the parsed document's root Value. It is
// only meaningful once Done reports true.
func (p *Parser) Root() *Value { return &p.root }

// ProcessToken advances the parser by one token. It returns the error
// that put the parser into its terminal state, if any; once an error has
// occurred every subsequent call returns the same error without doing
// further work.
func (p *Parser) ProcessToken(tok Token) error {
	if p.err != nil {
		return p.err
	}
	if p.done && tok.Kind != TokEnd {
		return p.fail(tok, "unexpected token after end of document")
	}

	switch p.state {
	case pRoot:
		return p.acceptRootValue(tok)
	case pArrVal:
		return p.acceptArrVal(tok)
	case pArrSep:
		return p.acceptArrSep(tok)
	case pObjKey:
		return p.acceptObjKey(tok)
	case pObjKeySep:
		return p.acceptObjKeySep(tok)
	case pObjVal:
		return p.acceptObjVal(tok)
	case pObjSep:
		return p.acceptObjSep(tok)
	case pEnd:
		return p.acceptEnd(tok)
	}
	return p.fail(tok, "unreachable parser state")
}

func (p *Parser) fail(tok Token, msg string) error {
	p.err = &SyntaxError{Err: ErrUnexpectedToken, Line: tok.Line, Column: tok.Column, Msg: msg}
	return p.err
}

func (p *Parser) sinkErr(err error) error {
	if err == nil {
		return nil
	}
	p.err = fmt.Errorf("%w: %v", ErrUser, err)
	return p.err
}

func (p *Parser) top() *frame {
	if len(p.frames) == 0 {
		return nil
	}
	return p.frames[len(p.frames)-1]
}

func (p *Parser) push(f *frame) error {
	if len(p.frames) >= maxDepth {
		return fmt.Errorf("%w: container nesting exceeds %d", ErrAlloc, maxDepth)
	}
	p.frames = append(p.frames, f)
	return nil
}

func (p *Parser) pop() *frame {
	f := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	return f
}

// acceptRootValue handles the single value that makes up an entire
// document.
func (p *Parser) acceptRootValue(tok Token) error {
	target := &p.root
	isContainer, err := p.assignValue(target, tok)
	if err != nil {
		return err
	}
	if isContainer {
		return nil // state already set by beginContainer
	}
	if err := p.sinkErr(p.sinkSetValue(target)); err != nil {
		return err
	}
	p.state = pEnd
	return nil
}

func (p *Parser) acceptArrVal(tok Token) error {
	if tok.Kind == TokArrClose {
		return p.closeContainer(tok)
	}
	f := p.top()
	idx := len(f.container.arrVal)
	target, err := f.container.AppendItem()
	if err != nil {
		return p.fail(tok, err.Error())
	}
	if p.Sink != nil {
		if err := p.sinkErr(p.Sink.BeginIndex(idx)); err != nil {
			return err
		}
	}
	isContainer, err := p.assignValue(target, tok)
	if err != nil {
		return err
	}
	if isContainer {
		return nil
	}
	if err := p.sinkErr(p.sinkSetValue(target)); err != nil {
		return err
	}
	p.state = pArrSep
	return nil
}

func (p *Parser) acceptArrSep(tok Token) error {
	switch tok.Kind {
	case TokComma:
		p.state = pArrVal
		return nil
	case TokArrClose:
		return p.closeContainer(tok)
	}
	return p.fail(tok, "expected ',' or ']'")
}

func (p *Parser) acceptObjKey(tok Token) error {
	if tok.Kind == TokObjClose {
		return p.closeContainer(tok)
	}
	if !tok.IsKeyCandidate() {
		return p.fail(tok, "expected an object key")
	}
	f := p.top()
	f.key = append([]byte(nil), tok.Text...)
	p.state = pObjKeySep
	return nil
}

func (p *Parser) acceptObjKeySep(tok Token) error {
	if tok.Kind != TokColon {
		return p.fail(tok, "expected ':' after object key")
	}
	p.state = pObjVal
	return nil
}

func (p *Parser) acceptObjVal(tok Token) error {
	f := p.top()
	target, ok := f.container.SetProp(f.key, true)
	if !ok {
		return p.fail(tok, "could not set object property")
	}
	if p.Sink != nil {
		if err := p.sinkErr(p.Sink.BeginKey(f.key)); err != nil {
			return err
		}
	}
	isContainer, err := p.assignValue(target, tok)
	if err != nil {
		return err
	}
	if isContainer {
		return nil
	}
	if err := p.sinkErr(p.sinkSetValue(target)); err != nil {
		return err
	}
	p.state = pObjSep
	return nil
}

func (p *Parser) acceptObjSep(tok Token) error {
	switch tok.Kind {
	case TokComma:
		p.state = pObjKey
		return nil
	case TokObjClose:
		return p.closeContainer(tok)
	}
	return p.fail(tok, "expected ',' or '}'")
}

func (p *Parser) acceptEnd(tok Token) error {
	if tok.Kind == TokEnd {
		p.done = true
		return nil
	}
	return p.fail(tok, "expected end of document")
}

// assignValue interprets tok as the start of a value written into target.
// It returns isContainer=true if tok opened an array or object, in which
// case a frame was pushed and the parser's state was already updated to
// expect that container's first member; the caller must not also treat
// the value as complete.
func (p *Parser) assignValue(target *Value, tok Token) (isContainer bool, err error) {
	switch tok.Kind {
	case TokString:
		target.SetString(tok.Text)
		return false, nil
	case TokNumber:
		target.SetInt(tok.IntValue)
		return false, nil
	case TokNumberFloat:
		target.SetFloat(tok.FloatValue)
		return false, nil
	case TokBool:
		target.SetBool(tok.IntValue != 0)
		return false, nil
	case TokNull:
		target.SetNull()
		return false, nil
	case TokNaN:
		target.SetNaN()
		return false, nil
	case TokInfinity:
		sign := tok.Sign
		if sign == 0 {
			sign = 1
		}
		target.SetInfinity(sign)
		return false, nil
	case TokObjOpen:
		target.SetObject()
		if p.Sink != nil {
			if err := p.sinkErr(p.Sink.BeginObject()); err != nil {
				return false, err
			}
		}
		if err := p.push(&frame{container: target, isObject: true, resume: p.nextResumeState()}); err != nil {
			return false, p.fail(tok, err.Error())
		}
		p.state = pObjKey
		return true, nil
	case TokArrOpen:
		target.SetArray()
		if p.Sink != nil {
			if err := p.sinkErr(p.Sink.BeginArray()); err != nil {
				return false, err
			}
		}
		if err := p.push(&frame{container: target, isObject: false, resume: p.nextResumeState()}); err != nil {
			return false, p.fail(tok, err.Error())
		}
		p.state = pArrVal
		return true, nil
	}
	return false, p.fail(tok, "expected a value")
}

// nextResumeState records what state the parser should return to (after
// popping the frame about to be pushed) once the container currently
// being opened is closed: the "separator" state of whichever context is
// opening it (or pEnd at the root).
func (p *Parser) nextResumeState() pstate {
	switch p.state {
	case pRoot:
		return pEnd
	case pArrVal:
		return pArrSep
	case pObjVal:
		return pObjSep
	}
	return pEnd
}

func (p *Parser) closeContainer(tok Token) error {
	f := p.top()
	if f == nil {
		return p.fail(tok, "unbalanced container close")
	}
	if f.isObject && tok.Kind != TokObjClose {
		return p.fail(tok, "expected '}'")
	}
	if !f.isObject && tok.Kind != TokArrClose {
		return p.fail(tok, "expected ']'")
	}
	resume := f.resume
	p.pop()
	if p.Sink != nil {
		if err := p.sinkErr(p.Sink.EndContainer()); err != nil {
			return err
		}
	}
	p.state = resume
	if err := p.sinkErr(p.sinkSetValue(f.container)); err != nil {
		return err
	}
	return nil
}

func (p *Parser) sinkSetValue(v *Value) error {
	if p.Sink == nil {
		return nil
	}
	return p.Sink.SetValue(v)
}
