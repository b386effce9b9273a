// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

// Tables for the productions of RFC 3986, Appendix A.
var (
	// ALPHA = %x41-5A / %x61-7A
	Alpha = Range('A', 'Z').Or(Range('a', 'z'))
	// DIGIT = %x30-39
	Digit = Range('0', '9')
	// HEXDIG = DIGIT / "A" / "B" / "C" / "D" / "E" / "F", case-insensitive.
	HexDig = Digit.Or(New("ABCDEFabcdef"))

	// unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
	Unreserved = Alpha.Or(Digit).Or(New("-._~"))
	// gen-delims = ":" / "/" / "?" / "#" / "[" / "]" / "@"
	GenDelims = New(":/?#[]@")
	// sub-delims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
	SubDelims = New("!$&'()*+,;=")
	// reserved = gen-delims / sub-delims
	Reserved = GenDelims.Or(SubDelims)

	// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
	Scheme = Alpha.Or(Digit).Or(New("+-."))

	// userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
	Userinfo = Unreserved.Or(SubDelims).Or(New(":")).Enc()
	// reg-name = *( unreserved / pct-encoded / sub-delims )
	RegName = Unreserved.Or(SubDelims).Enc()
	// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ), the
	// part after the dot.
	IPvFuture = Unreserved.Or(SubDelims).Or(New(":"))
	// port = *DIGIT
	Port = Digit

	// pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
	PChar = Unreserved.Or(SubDelims).Or(New(":@")).Enc()
	// segment = *pchar
	Segment = PChar
	// segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )
	SegmentNoColon = PChar.Sub(New(":"))
	// path = *( pchar / "/" ), covering every path form.
	Path = PChar.Or(New("/"))
	// query = *( pchar / "/" / "?" )
	Query = PChar.Or(New("/?"))
	// fragment = *( pchar / "/" / "?" )
	Fragment = Query

	// Data allows only unreserved bytes unencoded. Data encoded with it is
	// valid in every component that allows percent-encoding.
	Data = Unreserved.Enc()
)
