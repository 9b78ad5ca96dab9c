package json5_test

import (
	"fmt"

	json5 "github.com/mcvoid/json5"
)

// This example walks through the basics of decoding a JSON5 document,
// navigating it with the fluent accessors, and re-encoding it.
func Example() {
	doc := `{
		// comments are allowed
		unquoted: 'and you can quote me on that',
		singleQuotes: 'I can use "double quotes" here',
		lineBreaks: "Look, Mom! \
No \\n's!",
		hexadecimal: 0xDEADbeef,
		leadingDecimalPoint: .8675309,
		andTrailing: 8675309.,
		positiveSign: +1,
		trailingComma: 'in objects', andIn: ['arrays',],
		backwardsCompatible: "with JSON",
	}`

	v, err := json5.DecodeString(doc)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	if v.Type() != json5.Object {
		fmt.Println("expected an object")
		return
	}

	s, _ := v.Key("unquoted").AsString()
	fmt.Println(string(s))

	hex, _ := v.Key("hexadecimal").AsInt()
	fmt.Println(hex)

	arr := v.Key("andIn")
	fmt.Println("andIn has", arr.Len(), "element(s)")
	first, _ := arr.Index(0).AsString()
	fmt.Println(string(first))

	missing := v.Key("doesNotExist")
	fmt.Println(missing.Type())

	// Output:
	// and you can quote me on that
	// 3735928559
	// andIn has 1 element(s)
	// arrays
	// <null>
}

// This example builds a Value tree directly rather than parsing one, then
// serializes it. Encode's default output escapes non-ASCII text.
func Example_encode() {
	var root json5.Value
	root.SetObject()

	name, _ := root.SetProp([]byte("name"), true)
	name.SetString([]byte("café"))

	tags, _ := root.SetProp([]byte("tags"), true)
	tags.SetArray()
	for _, s := range []string{"drink", "hot"} {
		item, _ := tags.AppendItem()
		item.SetString([]byte(s))
	}

	out, err := json5.EncodeBytes(&root)
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}

	back, err := json5.DecodeBytes(out)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	s, _ := back.Key("name").AsString()
	fmt.Println(string(s))
	fmt.Println(back.Key("tags").Len())

	// Output:
	// café
	// 2
}
