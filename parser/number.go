package parser

import (
	"errors"
	"fmt"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

const (
	binaryPrefix      = "0b"
	octalPrefix       = "0o"
	decimalPrefix     = "0d"
	hexadecimalPrefix = "0x"
	fractionToken     = "."
)

var (
	binaryDigitChars      = reader.CharClass{{Lo: '0', Hi: '1'}}
	octalDigitChars       = reader.CharClass{{Lo: '0', Hi: '7'}}
	decimalDigitChars     = reader.CharClass{{Lo: '0', Hi: '9'}}
	hexadecimalDigitChars = reader.CharClass{{Lo: '0', Hi: '9'}, {Lo: 'A', Hi: 'F'}, {Lo: 'a', Hi: 'f'}}
	digitSeparatorChars   = reader.CharClass{{Lo: '_', Hi: '_'}}
)

// Radix is the numeral base a number literal is written in.
type Radix int

const (
	RadixBinary      Radix = 2
	RadixOctal       Radix = 8
	RadixDecimal     Radix = 10
	RadixHexadecimal Radix = 16
)

func (x Radix) String() string {
	switch x {
	case RadixBinary:
		return "binary"
	case RadixOctal:
		return "octal"
	case RadixDecimal:
		return "decimal"
	case RadixHexadecimal:
		return "hexadecimal"
	default:
		return "unknown"
	}
}

// Prefix is the literal prefix text of the radix.
func (x Radix) Prefix() string {
	switch x {
	case RadixBinary:
		return binaryPrefix
	case RadixOctal:
		return octalPrefix
	case RadixDecimal:
		return decimalPrefix
	case RadixHexadecimal:
		return hexadecimalPrefix
	default:
		return ""
	}
}

func (x Radix) digitChars() reader.CharClass {
	switch x {
	case RadixBinary:
		return binaryDigitChars
	case RadixOctal:
		return octalDigitChars
	case RadixHexadecimal:
		return hexadecimalDigitChars
	default:
		return decimalDigitChars
	}
}

// Number is a number literal, optionally radix-prefixed ('0b', '0o', '0d',
// '0x') and, for decimal numbers, optionally carrying a fractional part.
// Digit runs may group digits with single '_' separators.
type Number struct {
	span        reader.Span
	radix       Radix
	hasPrefix   bool
	digits      reader.Span
	fraction    reader.Span
	hasFraction bool
}

// Span delimits the whole literal including prefix and fraction.
func (n *Number) Span() reader.Span { return n.span }

// Radix is the numeral base of the literal.
func (n *Number) Radix() Radix { return n.radix }

// HasPrefix reports whether the literal carries an explicit radix prefix.
func (n *Number) HasPrefix() bool { return n.hasPrefix }

// Prefix is the literal's prefix text, or "" when it has none.
func (n *Number) Prefix() string {
	if !n.hasPrefix {
		return ""
	}
	return n.radix.Prefix()
}

// Digits delimits the integer digit run, separators included.
func (n *Number) Digits() reader.Span { return n.digits }

// Fraction delimits the fractional digit run, if present.
func (n *Number) Fraction() (reader.Span, bool) { return n.fraction, n.hasFraction }

func (*Number) expressionNode() {}
func (*Number) literalNode()    {}

// ParseNumber parses a prefixed number or an unprefixed decimal. Once a
// prefix has been read the rule is committed: a separator right after the
// prefix or a missing digit run is a hard error.
func ParseNumber(r *reader.Reader, ctx *Context) (*Number, error) {
	return guard(r, ctx, func(init reader.Cursor) (*Number, error) {
		radix := RadixDecimal
		hasPrefix := true
		switch {
		case r.Read(binaryPrefix):
			radix = RadixBinary
		case r.Read(octalPrefix):
			radix = RadixOctal
		case r.Read(hexadecimalPrefix):
			radix = RadixHexadecimal
		case r.Read(decimalPrefix):
		default:
			hasPrefix = false
		}

		if hasPrefix {
			if _, ok := r.ContinuesWithOneOf(digitSeparatorChars); ok {
				separatorStart := r.Save()
				r.ReadOneOf(digitSeparatorChars)
				ctx.addError(
					diag.NumberWithSeparatorAfterPrefix,
					fmt.Sprintf("A digit separator is not allowed right after the %q prefix", radix.Prefix()),
					diag.NewSnippet(r.SubstringToCurrent(separatorStart), "remove this separator"),
				)
				return nil, ErrSyntax
			}
		}

		digits, err := parseDigits(r, ctx, radix.digitChars())
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			if hasPrefix {
				ctx.addError(
					diag.NumberWithoutDigitsAfterPrefix,
					fmt.Sprintf("At least one %s digit was expected after the %q prefix", radix, radix.Prefix()),
					diag.NewSnippet(r.SubstringToCurrent(init), "insert a digit after this prefix"),
				)
				return nil, ErrSyntax
			}
			return nil, ErrNotFound
		}

		node := &Number{
			radix:     radix,
			hasPrefix: hasPrefix,
			digits:    digits,
		}

		// Only decimal numbers have a fractional part. The dot is consumed
		// only when digits follow it.
		if radix == RadixDecimal {
			mark := r.Save()
			if r.Read(fractionToken) {
				fraction, err := parseDigits(r, ctx, radix.digitChars())
				switch {
				case err == nil:
					node.fraction = fraction
					node.hasFraction = true
				case errors.Is(err, ErrNotFound):
					r.Restore(mark)
				default:
					return nil, err
				}
			}
		}

		node.span = r.SubstringToCurrent(init)
		checkLeadingZeroes(ctx, node)
		checkTrailingZeroes(ctx, node)
		return node, nil
	})
}

// parseDigits parses a digit run with optional single '_' separators
// between digit groups. A separator not followed by another digit ends the
// run, rolling back to just before the separator.
func parseDigits(r *reader.Reader, ctx *Context, digits reader.CharClass) (reader.Span, error) {
	return guard(r, ctx, func(init reader.Cursor) (reader.Span, error) {
		if _, ok := r.ReadManyOf(digits); !ok {
			return reader.Span{}, ErrNotFound
		}

		for {
			mark := r.Save()
			if _, ok := r.ReadOneOf(digitSeparatorChars); !ok {
				break
			}
			if _, ok := r.ReadManyOf(digits); !ok {
				r.Restore(mark)
				break
			}
		}

		return r.SubstringToCurrent(init), nil
	})
}

// checkLeadingZeroes records a warning when the integer digits start with
// removable zeroes. The literal '0' itself is not redundant.
func checkLeadingZeroes(ctx *Context, n *Number) {
	if ctx.config.IgnoreLeadingZeroes {
		return
	}
	raw := n.digits.Content()
	removable := leadingZeroRun(raw)
	if removable == 0 {
		return
	}
	ctx.addWarning(
		diag.NumberWithLeadingZeroes,
		"This number has unnecessary leading zeroes",
		diag.NewSnippet(n.digits.Slice(0, removable), "remove these leading zeroes"),
	)
}

// checkTrailingZeroes records a warning when the fraction digits end with
// removable zeroes. The 'X.0' form is not redundant.
func checkTrailingZeroes(ctx *Context, n *Number) {
	if ctx.config.IgnoreTrailingZeroes {
		return
	}
	if !n.hasFraction {
		return
	}
	raw := n.fraction.Content()
	removable := trailingZeroRun(raw)
	if removable == 0 {
		return
	}
	ctx.addWarning(
		diag.NumberWithTrailingZeroes,
		"This number has unnecessary trailing zeroes",
		diag.NewSnippet(n.fraction.Slice(len(raw)-removable, len(raw)), "remove these trailing zeroes"),
	)
}

// leadingZeroRun is the byte length of the removable '0'/'_' prefix of a
// digit run, leaving at least one digit and never a remainder that starts
// with a separator.
func leadingZeroRun(raw string) int {
	n := 0
	for n < len(raw) && (raw[n] == '0' || raw[n] == '_') {
		n++
	}
	if n == len(raw) {
		n--
	}
	return n
}

// trailingZeroRun is the byte length of the removable '0'/'_' suffix of a
// digit run, leaving at least one digit and never a remainder that ends
// with a separator.
func trailingZeroRun(raw string) int {
	n := 0
	for n < len(raw) && (raw[len(raw)-1-n] == '0' || raw[len(raw)-1-n] == '_') {
		n++
	}
	if n == len(raw) {
		n--
	}
	return n
}
