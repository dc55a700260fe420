package pos

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// Parse is the inverse of String for element types with a strconv form.
// It is ParseWith using ParseElem as the element parser.
func Parse[T Scalar](s string) (Pos[T], error) {
	return ParseWith(s, ParseElem[T])
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and initialisers.
func MustParse[T Scalar](s string) Pos[T] {
	p, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("pos: MustParse(%q): %v", s, err))
	}
	return p
}

// ParseWith parses "(x, y)" using elem for each component.
//
// Surrounding whitespace is ignored and the trimmed input must be wrapped in
// parentheses. Inside them every comma is tried from left to right; the first
// one for which elem accepts the text before it and the whitespace-trimmed
// text after it wins. This lets element grammars that themselves contain
// commas (e.g. "1,000") round-trip. Text before the comma is passed to elem
// untouched.
//
// Any failure returns ErrSyntax.
func ParseWith[T Scalar](s string, elem func(string) (T, error)) (Pos[T], error) {
	log := L()
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	body := strings.TrimSpace(s)
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		if debug {
			log.Debug("pos.parse.no_parens", "input", s)
		}
		return Pos[T]{}, ErrSyntax
	}
	body = body[1 : len(body)-1]

	for sep := 1; sep < len(body); sep++ {
		if body[sep] != ',' {
			continue
		}
		x, err := elem(body[:sep])
		if err == nil {
			var y T
			if y, err = elem(strings.TrimSpace(body[sep+1:])); err == nil {
				return Pos[T]{X: x, Y: y}, nil
			}
		}
		if debug {
			log.Debug("pos.parse.candidate_rejected", "input", s, "offset", sep, "err", err)
		}
	}

	if debug {
		log.Debug("pos.parse.failed", "input", s)
	}
	return Pos[T]{}, ErrSyntax
}

// ParseElem parses a single element with strconv according to the
// underlying kind of T: base-10 integers or floats, sized to T.
func ParseElem[T Scalar](s string) (T, error) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return 0, err
		}
		return T(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return 0, err
		}
		return T(v), nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedElement, t)
}
