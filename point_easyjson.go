package lttb

import (
	"fmt"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// MarshalJSON encodes the Point as a two element [x,y] array,
// the form charting libraries consume.
func (p Point) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	p.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (p Point) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawByte('[')
	out.Float64(p.X)
	out.RawByte(',')
	out.Float64(p.Y)
	out.RawByte(']')
}

// UnmarshalJSON decodes a Point from a two element [x,y] array.
func (p *Point) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	p.UnmarshalEasyJSON(&r)
	return r.Error()
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (p *Point) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}

	var (
		xy [2]float64
		n  int
	)

	in.Delim('[')
	for !in.IsDelim(']') {
		if n < len(xy) {
			xy[n] = in.Float64()
		} else {
			in.SkipRecursive()
		}
		n++
		in.WantComma()
	}
	in.Delim(']')

	if n != len(xy) && in.Ok() {
		in.AddError(fmt.Errorf("lttb: point must have 2 coordinates, got %d", n))
	}

	if isTopLevel {
		in.Consumed()
	}

	if in.Ok() {
		p.X, p.Y = xy[0], xy[1]
	}
}
