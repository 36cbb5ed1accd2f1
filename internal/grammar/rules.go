package grammar

import "github.com/ghettovoice/abnf"

// RFC 3986 authority without userinfo, as left by net/url after unescaping:
//
//	hostport      = host [ ":" port ]
//	host          = IPv6reference / hostname
//	IPv6reference = "[" 1*( HEXDIG / ":" / "." ) [ "%" ZoneID ] "]"
//	ZoneID        = 1*( unreserved / sub-delims / UTF8-octet )
//	hostname      = 1*( unreserved / sub-delims / UTF8-octet )
//	unreserved    = ALPHA / DIGIT / "-" / "." / "_" / "~"
//	sub-delims    = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
//	UTF8-octet    = %x80-FF
//	port          = 1*DIGIT
//
// IPv6 literal contents and the port range are checked by callers.
var (
	digit = abnf.Range("DIGIT", []byte("0"), []byte("9"))
	alpha = abnf.AltFirst(
		"ALPHA",
		abnf.Range("%x41-5A", []byte("A"), []byte("Z")),
		abnf.Range("%x61-7A", []byte("a"), []byte("z")),
	)
	hexdig = abnf.AltFirst(
		"HEXDIG",
		digit,
		abnf.Range("%x41-46", []byte("A"), []byte("F")),
		abnf.Range("%x61-66", []byte("a"), []byte("f")),
	)

	unreserved = abnf.AltFirst(
		"unreserved",
		alpha,
		digit,
		abnf.Literal("\"-\"", []byte("-")),
		abnf.Literal("\".\"", []byte(".")),
		abnf.Literal("\"_\"", []byte("_")),
		abnf.Literal("\"~\"", []byte("~")),
	)
	subDelims = abnf.AltFirst(
		"sub-delims",
		abnf.Literal("\"!\"", []byte("!")),
		abnf.Literal("\"$\"", []byte("$")),
		abnf.Literal("\"&\"", []byte("&")),
		abnf.Literal("\"'\"", []byte("'")),
		abnf.Literal("\"(\"", []byte("(")),
		abnf.Literal("\")\"", []byte(")")),
		abnf.Literal("\"*\"", []byte("*")),
		abnf.Literal("\"+\"", []byte("+")),
		abnf.Literal("\",\"", []byte(",")),
		abnf.Literal("\";\"", []byte(";")),
		abnf.Literal("\"=\"", []byte("=")),
	)
	utf8Octet = abnf.Range("UTF8-octet", []byte{0x80}, []byte{0xff})

	regChar = abnf.AltFirst("reg-char", unreserved, subDelims, utf8Octet)

	hostname = abnf.Repeat1Inf("hostname", regChar)

	ipv6reference = abnf.Concat(
		"IPv6reference",
		abnf.Literal("\"[\"", []byte("[")),
		abnf.Repeat1Inf(
			"IPv6address",
			abnf.AltFirst(
				"IPv6-char",
				hexdig,
				abnf.Literal("\":\"", []byte(":")),
				abnf.Literal("\".\"", []byte(".")),
			),
		),
		abnf.Optional(
			"[ \"%\" ZoneID ]",
			abnf.Concat(
				"\"%\" ZoneID",
				abnf.Literal("\"%\"", []byte("%")),
				abnf.Repeat1Inf("ZoneID", regChar),
			),
		),
		abnf.Literal("\"]\"", []byte("]")),
	)

	host = abnf.AltFirst("host", ipv6reference, hostname)

	port = abnf.Repeat1Inf("port", digit)

	hostport = abnf.Concat(
		"hostport",
		host,
		abnf.Optional(
			"[ \":\" port ]",
			abnf.Concat("\":\" port", abnf.Literal("\":\"", []byte(":")), port),
		),
	)
)
