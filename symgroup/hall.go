package symgroup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/xtalsym/symop"
)

// Hall symbols are interpreted following ITfC vol.B ch.1.4 (2010) and
// http://cci.lbl.gov/sginfo/hall_symbols.html

// skipBlank advances past spaces, tabs and underscores ('_' == ' ').
func skipBlank(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '_') {
		i++
	}
	return i
}

// findBlank advances to the next blank or the end of the string.
func findBlank(s string, i int) int {
	for i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != '_' {
		i++
	}
	return i
}

// hallRotationZ returns the principal rotation matrix around z for an
// n-fold order 1|2|3|4|6, or the diagonal two-fold ('\”, '"') and
// body-diagonal three-fold ('*') matrices.
func hallRotationZ(n int) (symop.Rot, error) {
	const d = symop.DEN
	switch n {
	case 1:
		return symop.Rot{{d, 0, 0}, {0, d, 0}, {0, 0, d}}, nil
	case 2:
		return symop.Rot{{-d, 0, 0}, {0, -d, 0}, {0, 0, d}}, nil
	case 3:
		return symop.Rot{{0, -d, 0}, {d, -d, 0}, {0, 0, d}}, nil
	case 4:
		return symop.Rot{{0, -d, 0}, {d, 0, 0}, {0, 0, d}}, nil
	case 6:
		return symop.Rot{{d, -d, 0}, {d, 0, 0}, {0, 0, d}}, nil
	case '\'':
		return symop.Rot{{0, -d, 0}, {-d, 0, 0}, {0, 0, -d}}, nil
	case '"':
		return symop.Rot{{0, d, 0}, {d, 0, 0}, {0, 0, -d}}, nil
	case '*':
		return symop.Rot{{0, 0, d}, {d, 0, 0}, {0, d, 0}}, nil
	default:
		return symop.Rot{}, fmt.Errorf("%w: incorrect axis definition", ErrHall)
	}
}

// hallTranslation returns the intrinsic-translation vector of a letter:
// half-cell shifts a,b,c,n and quarter-cell shifts u,v,w,d.
func hallTranslation(symbol byte) (symop.Tran, error) {
	const h = symop.DEN / 2
	const q = symop.DEN / 4
	switch symbol {
	case 'a':
		return symop.Tran{h, 0, 0}, nil
	case 'b':
		return symop.Tran{0, h, 0}, nil
	case 'c':
		return symop.Tran{0, 0, h}, nil
	case 'n':
		return symop.Tran{h, h, h}, nil
	case 'u':
		return symop.Tran{q, 0, 0}, nil
	case 'v':
		return symop.Tran{0, q, 0}, nil
	case 'w':
		return symop.Tran{0, 0, q}, nil
	case 'd':
		return symop.Tran{q, q, q}, nil
	default:
		return symop.Tran{}, fmt.Errorf("%w: unknown symbol %q", ErrHall, string(symbol))
	}
}

// hallMatrixSymbol decodes one matrix symbol token into a rotation
// generator. pos is the 1-based position of the token among the matrix
// symbols; prev carries the n-fold order of the previous token for the
// implicit-axis rules.
func hallMatrixSymbol(token string, pos int, prev *int) (symop.Op, error) {
	op := symop.Identity()
	neg := token[0] == '-'
	p := 0
	if neg {
		p = 1
	}
	if p >= len(token) || token[p] < '1' || token[p] == '5' || token[p] > '6' {
		return op, fmt.Errorf("%w: wrong n-fold order notation %q", ErrHall, token)
	}
	n := int(token[p] - '0')
	p++

	fracTran := 0
	var principal, diagonal byte
	for ; p < len(token); p++ {
		c := token[p]
		switch {
		case c >= '1' && c <= '5':
			if fracTran != 0 {
				return op, fmt.Errorf("%w: two numeric subscripts in %q", ErrHall, token)
			}
			fracTran = int(c - '0')
		case c == '\'' || c == '"' || c == '*':
			want := 2
			if c == '*' {
				want = 3
			}
			if n != want {
				return op, fmt.Errorf("%w: wrong symbol %q", ErrHall, token)
			}
			diagonal = c
		case c == 'x' || c == 'y' || c == 'z':
			principal = c
		default:
			tr, err := hallTranslation(c)
			if err != nil {
				return op, err
			}
			op = op.Translated(tr)
		}
	}

	// fill in implicit axes
	if principal == 0 && diagonal == 0 {
		switch {
		case pos == 1:
			principal = 'z'
		case pos == 2 && n == 2 && (*prev == 2 || *prev == 4):
			principal = 'x'
		case pos == 2 && n == 2 && (*prev == 3 || *prev == 6):
			diagonal = '\''
		case pos == 3 && n == 3:
			diagonal = '*'
		}
		if principal == 0 && diagonal == 0 && n != 1 {
			return op, fmt.Errorf("%w: missing axis in %q", ErrHall, token)
		}
	}

	rotSym := n
	if diagonal != 0 {
		rotSym = int(diagonal)
	}
	rot, err := hallRotationZ(rotSym)
	if err != nil {
		return op, err
	}
	op.Rot = rot
	if neg {
		op.Rot = op.NegatedRot()
	}
	alterOrder := func(r symop.Rot, i, j, k int) symop.Rot {
		return symop.Rot{
			{r[i][i], r[i][j], r[i][k]},
			{r[j][i], r[j][j], r[j][k]},
			{r[k][i], r[k][j], r[k][k]},
		}
	}
	if principal == 'x' {
		op.Rot = alterOrder(op.Rot, 2, 0, 1)
	} else if principal == 'y' {
		op.Rot = alterOrder(op.Rot, 1, 2, 0)
	}
	if fracTran != 0 {
		if principal == 0 {
			return op, fmt.Errorf("%w: numeric subscript without principal axis in %q", ErrHall, token)
		}
		op.Tran[principal-'x'] += symop.DEN / n * fracTran
	}
	*prev = n
	return op, nil
}

// parseHallChangeOfBasis parses the parenthesized change-of-basis: either
// a long triplet ("x,y,z+1/12") or a short triple of twelfths-of-cell
// integers ("0 0 -1").
func parseHallChangeOfBasis(s string) (symop.Op, error) {
	if strings.IndexByte(s, ',') >= 0 { // long form
		return symop.ParseTriplet(s)
	}
	cob := symop.Identity()
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return cob, fmt.Errorf("%w: unexpected change-of-basis format %q", ErrHall, s)
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return cob, fmt.Errorf("%w: unexpected change-of-basis format %q", ErrHall, s)
		}
		cob.Tran[i] = v % 12 * (symop.DEN / 12)
	}
	return cob, nil
}

// GeneratorsFromHall interprets a Hall symbol into an unclosed GroupOps:
// SymOps holds identity plus the generators (plus the global inversion
// for a leading '-'), CenOps holds the complete centering set of the
// lattice letter. A trailing parenthesized change-of-basis is applied to
// the collected generators. Call AddMissingElements (or SymopsFromHall)
// to close the group.
func GeneratorsFromHall(hall string) (*GroupOps, error) {
	i := skipBlank(hall, 0)
	if i >= len(hall) {
		return nil, fmt.Errorf("%w: empty symbol", ErrHall)
	}
	ops := &GroupOps{SymOps: []symop.Op{symop.Identity()}}
	if hall[i] == '-' {
		ops.SymOps = append(ops.SymOps, symop.Identity().Negated())
		i++
	}
	i = skipBlank(hall, i)
	if i >= len(hall) {
		return nil, fmt.Errorf("%w: %q", ErrHall, hall)
	}
	cen, err := CenteringVectors(hall[i])
	if err != nil {
		return nil, fmt.Errorf("%w in %q", err, hall)
	}
	ops.CenOps = cen

	counter := 0
	prev := 0
	i = skipBlank(hall, i+1)
	for i < len(hall) && hall[i] != '(' {
		j := findBlank(hall, i)
		counter++
		if token := hall[i:j]; token != "1" {
			op, err := hallMatrixSymbol(token, counter, &prev)
			if err != nil {
				return nil, err
			}
			ops.SymOps = append(ops.SymOps, op)
		}
		i = skipBlank(hall, j)
	}

	if i < len(hall) && hall[i] == '(' {
		rb := strings.IndexByte(hall[i:], ')')
		if rb < 0 {
			return nil, fmt.Errorf("%w: missing ')' in %q", ErrHall, hall)
		}
		rb += i
		cob, err := parseHallChangeOfBasis(hall[i+1 : rb])
		if err != nil {
			return nil, err
		}
		if err := ops.ChangeBasis(cob); err != nil {
			return nil, err
		}
		if skipBlank(hall, rb+1) != len(hall) {
			return nil, fmt.Errorf("%w: unexpected characters after ')' in %q", ErrHall, hall)
		}
	}
	return ops, nil
}

// SymopsFromHall interprets a Hall symbol and closes the generator set:
// the complete operation list of the space group it denotes.
func SymopsFromHall(hall string) (*GroupOps, error) {
	ops, err := GeneratorsFromHall(hall)
	if err != nil {
		return nil, err
	}
	if err := ops.AddMissingElements(); err != nil {
		return nil, err
	}
	return ops, nil
}
