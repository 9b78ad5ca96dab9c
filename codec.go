package json5

import "io"

// DecodeBytes parses a complete, in-memory JSON5 document and returns its
// root Value. It composes a Tokenizer and Parser exactly as Decode does
// for an io.Reader, without the intermediate chunking.
func DecodeBytes(src []byte) (*Value, error) {
	p := NewParser()
	tok := NewTokenizer(p.ProcessToken)
	if err := tok.Push(src); err != nil {
		return nil, err
	}
	if err := tok.Finish(); err != nil {
		return nil, err
	}
	if err := p.LastError(); err != nil {
		return nil, err
	}
	if !p.Done() {
		return nil, &SyntaxError{Err: ErrPrematureEnd, Msg: "incomplete document"}
	}
	root := &Value{}
	root.Transfer(p.Root())
	return root, nil
}

// DecodeString is DecodeBytes for a string source.
func DecodeString(src string) (*Value, error) {
	return DecodeBytes([]byte(src))
}

// decodeChunkSize bounds how much of a Reader's input is held in memory
// at once, matching spec.md §4.2's description of internal chunking.
const decodeChunkSize = 1024

// Decode reads and parses a JSON5 document from r, streaming it through
// the Tokenizer and Parser in bounded chunks rather than buffering the
// whole input.
func Decode(r io.Reader) (*Value, error) {
	p := NewParser()
	tok := NewTokenizer(p.ProcessToken)

	buf := make([]byte, decodeChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if pushErr := tok.Push(buf[:n]); pushErr != nil {
				return nil, pushErr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if err := tok.Finish(); err != nil {
		return nil, err
	}
	if err := p.LastError(); err != nil {
		return nil, err
	}
	if !p.Done() {
		return nil, &SyntaxError{Err: ErrPrematureEnd, Msg: "incomplete document"}
	}
	root := &Value{}
	root.Transfer(p.Root())
	return root, nil
}

// EncodeBytes serializes v to a newly allocated byte slice.
func EncodeBytes(v *Value, opts ...WriterOption) ([]byte, error) {
	var out []byte
	w := NewWriter(func(chunk []byte) error {
		out = append(out, chunk...)
		return nil
	}, opts...)
	if err := w.WriteValue(v); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode serializes v and writes it to dst.
func Encode(dst io.Writer, v *Value, opts ...WriterOption) error {
	writer := NewWriter(func(chunk []byte) error {
		_, err := dst.Write(chunk)
		return err
	}, opts...)
	return writer.WriteValue(v)
}
