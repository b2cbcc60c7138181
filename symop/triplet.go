package symop

import (
	"fmt"
	"strconv"
	"strings"
)

// skipBlank advances i past spaces, tabs and underscores ('_' doubles as
// a space in crystallographic notation).
func skipBlank(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '_') {
		i++
	}
	return i
}

// parseTripletPart parses one comma-separated part of a triplet as a sum
// of signed terms and returns {x,y,z,shift} coefficients scaled by DEN.
// Each term is an optional sign, an optional numerator, an optional
// /denominator (which must divide DEN), and either an axis letter
// (x/h/a, y/k/b, z/l/c, any case, '*'-marked when a coefficient is given)
// or nothing, making the term a constant shift.
func parseTripletPart(s string) ([4]int, error) {
	var r [4]int
	num := DEN
	i := skipBlank(s, 0)
	for i < len(s) {
		if s[i] == '+' || s[i] == '-' {
			if s[i] == '+' {
				num = DEN
			} else {
				num = -DEN
			}
			i = skipBlank(s, i+1)
			if i >= len(s) {
				return r, fmt.Errorf("%w: trailing sign in %q", ErrTriplet, s)
			}
		}
		if num == 0 {
			// a term not introduced by a sign after the first one
			return r, fmt.Errorf("%w: %q", ErrTriplet, s)
		}
		isShift := false
		if s[i] >= '0' && s[i] <= '9' {
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			v, err := strconv.Atoi(s[i:j])
			if err != nil {
				return r, fmt.Errorf("%w: %q", ErrTriplet, s)
			}
			num *= v
			if j < len(s) && s[j] == '/' {
				k := j + 1
				for k < len(s) && s[k] >= '0' && s[k] <= '9' {
					k++
				}
				den, err := strconv.Atoi(s[j+1 : k])
				if err != nil || den < 1 || DEN%den != 0 {
					return r, fmt.Errorf("%w: %q in %q", ErrDenominator, s[j+1:k], s)
				}
				num /= den
				j = k
			}
			if j < len(s) && s[j] == '*' {
				i = skipBlank(s, j+1)
			} else {
				isShift = true
				i = j
			}
		}
		if isShift {
			r[3] += num
		} else {
			if i >= len(s) {
				return r, fmt.Errorf("%w: missing axis letter in %q", ErrTriplet, s)
			}
			switch s[i] {
			case 'x', 'X', 'h', 'H', 'a', 'A':
				r[0] += num
			case 'y', 'Y', 'k', 'K', 'b', 'B':
				r[1] += num
			case 'z', 'Z', 'l', 'L', 'c', 'C':
				r[2] += num
			default:
				return r, fmt.Errorf("%w: unexpected character %q in %q", ErrTriplet, s[i], s)
			}
			i++
		}
		i = skipBlank(s, i)
		num = 0
	}
	if num != 0 {
		return r, fmt.Errorf("%w: trailing sign in %q", ErrTriplet, s)
	}
	return r, nil
}

// ParseTriplet parses a coordinate triplet such as "x,y,z" or
// "-y,x-y,z+1/3" into an Op. The input must contain exactly two commas.
func ParseTriplet(s string) (Op, error) {
	if strings.Count(s, ",") != 2 {
		return Op{}, fmt.Errorf("%w: expected exactly two commas in %q", ErrTriplet, s)
	}
	c1 := strings.IndexByte(s, ',')
	c2 := c1 + 1 + strings.IndexByte(s[c1+1:], ',')
	a, err := parseTripletPart(s[:c1])
	if err != nil {
		return Op{}, err
	}
	b, err := parseTripletPart(s[c1+1 : c2])
	if err != nil {
		return Op{}, err
	}
	c, err := parseTripletPart(s[c2+1:])
	if err != nil {
		return Op{}, err
	}
	return Op{
		Rot:  Rot{{a[0], a[1], a[2]}, {b[0], b[1], b[2]}, {c[0], c[1], c[2]}},
		Tran: Tran{a[3], b[3], c[3]},
	}, nil
}

func appendSign(sb *strings.Builder, n int) {
	if n < 0 {
		sb.WriteByte('-')
	} else if sb.Len() != 0 {
		sb.WriteByte('+')
	}
}

// appendFraction writes w/DEN reduced to lowest terms. DEN = 24 = 2·2·2·3,
// so the reduced denominator is always one of {1,2,3,4,6,8,12,24}.
func appendFraction(sb *strings.Builder, w int) {
	denom := 1
	for i := 0; i < 3; i++ {
		if w%2 == 0 {
			w /= 2
		} else {
			denom *= 2
		}
	}
	if w%3 == 0 {
		w /= 3
	} else {
		denom *= 3
	}
	sb.WriteString(strconv.Itoa(w))
	if denom != 1 {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(denom))
	}
}

// makeTripletPart prints one row of an operation: signed terms for the
// nonzero axis coefficients (the coefficient is elided when it equals DEN,
// else printed as a lowest-terms fraction with a '*' marker), followed by
// a signed constant fraction if the shift is nonzero. style selects the
// axis alphabet ('x' → x,y,z).
func makeTripletPart(x, y, z, w int, style byte) string {
	var sb strings.Builder
	xyz := [3]int{x, y, z}
	for i := 0; i < 3; i++ {
		if xyz[i] == 0 {
			continue
		}
		appendSign(&sb, xyz[i])
		a := xyz[i]
		if a < 0 {
			a = -a
		}
		if a != DEN {
			appendFraction(&sb, a)
			sb.WriteByte('*')
		}
		sb.WriteByte(style + byte(i))
	}
	if w != 0 {
		appendSign(&sb, w)
		a := w
		if a < 0 {
			a = -a
		}
		appendFraction(&sb, a)
	}
	return sb.String()
}

// Triplet prints the operation in coordinate-triplet notation.
// For a canonical (wrapped) operation, ParseTriplet(o.Triplet()) == o.
func (o Op) Triplet() string {
	return makeTripletPart(o.Rot[0][0], o.Rot[0][1], o.Rot[0][2], o.Tran[0], 'x') +
		"," + makeTripletPart(o.Rot[1][0], o.Rot[1][1], o.Rot[1][2], o.Tran[1], 'x') +
		"," + makeTripletPart(o.Rot[2][0], o.Rot[2][1], o.Rot[2][2], o.Tran[2], 'x')
}
