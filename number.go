package ddbjson

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/olpa/ddbjson/types"
)

// isFloatLiteral applies the recovery rule for number literals: a literal
// holding '.' or an exponent marker decodes as a float, anything else as an
// integer. The rule is textual on purpose; "1e0" decodes as float even when
// it was meant as an exact integer.
func isFloatLiteral(lit string) bool {
	return strings.ContainsAny(lit, ".eE")
}

// isNumberLiteral reports whether lit is a plain decimal literal: an
// optional sign, digits with an optional fractional part, and an optional
// exponent. strconv alone is too permissive here; it also accepts hex
// floats, underscore separators, "Inf" and "NaN".
func isNumberLiteral(lit string) bool {
	s := lit
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	i, digits := 0, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			digits++
		}
	}

	if digits == 0 {
		return false
	}

	if i == len(s) {
		return true
	}

	if s[i] != 'e' && s[i] != 'E' {
		return false
	}

	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	expDigits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		expDigits++
	}

	return expDigits > 0 && i == len(s)
}

// decodeNumber converts a DynamoDB number literal into its plain JSON form,
// recovering the integer/float distinction from the text. The result is a
// canonical json.Number, so the distinction survives re-serialization:
// integers render bare, floats always carry a '.' or an exponent marker.
//
// Integers beyond int64 range are kept at arbitrary precision. Floats that
// overflow float64 are rejected rather than materialized as infinity.
func decodeNumber(lit string) (json.Number, error) {
	if !isNumberLiteral(lit) {
		return "", invalidNumber(lit, nil)
	}

	if isFloatLiteral(lit) {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return "", invalidNumber(lit, err)
		}

		return json.Number(formatFloat(f)), nil
	}

	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return json.Number(strconv.FormatInt(i, 10)), nil
	}

	b, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return "", invalidNumber(lit, nil)
	}

	return json.Number(b.String()), nil
}

// formatFloat renders f as a canonical float literal: the shortest decimal
// form for moderate magnitudes, scientific notation for very large or very
// small ones, and always with a '.' or exponent marker so the text decodes
// back as a float ("3" becomes "3.0").
func formatFloat(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

func invalidNumber(lit string, cause error) error {
	return types.NewError(types.ErrCodeInvalidNumberLiteral,
		fmt.Sprintf("invalid number format: %q", lit), cause)
}
