package placement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// op is a single entry of an SVG transform list, e.g. scale(2).
type op struct {
	Name string
	Args []float64
}

func (o op) String() string {
	args := make([]string, len(o.Args))
	for i, a := range o.Args {
		args[i] = strconv.FormatFloat(a, 'f', 6, 64)
	}

	return fmt.Sprintf("%s(%s)", o.Name, strings.Join(args, ","))
}

type opList []op

func (l opList) String() string {
	parts := make([]string, len(l))
	for i, o := range l {
		parts[i] = o.String()
	}

	return strings.Join(parts, " ")
}

var opPattern = regexp.MustCompile(`([A-Za-z]+)\s*\(([^)]*)\)`)

func parseOps(s string) (opList, error) {
	var result opList
	rest := strings.TrimSpace(s)
	for rest != "" {
		loc := opPattern.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return nil, fmt.Errorf("%w: unexpected %q", ErrMalformedTransform, rest)
		}

		o := op{Name: rest[loc[2]:loc[3]]}
		if raw := strings.Trim(rest[loc[4]:loc[5]], " \t\r\n,"); raw != "" {
			for _, a := range viewBoxSeparator.Split(raw, -1) {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: argument %q of %s: %w", ErrMalformedTransform, a, o.Name, err)
				}

				o.Args = append(o.Args, v)
			}
		}

		result = append(result, o)
		rest = strings.TrimLeft(rest[loc[1]:], " \t\r\n,")
	}

	return result, nil
}

func (o op) affine() (Affine, error) {
	switch o.Name {
	case "translate":
		switch len(o.Args) {
		case 1:
			return Affine{Scale: 1, Translate: Pt(CanvasPos(o.Args[0]), 0), Degraded: true}, nil
		case 2:
			return Affine{Scale: 1, Translate: Pt(CanvasPos(o.Args[0]), CanvasPos(o.Args[1])), Degraded: true}, nil
		}
	case "scale":
		switch {
		case len(o.Args) == 1, len(o.Args) == 2 && o.Args[0] == o.Args[1]:
			return Affine{Scale: o.Args[0]}, nil
		case len(o.Args) == 2:
			return Affine{}, fmt.Errorf("%w: non-uniform %s", ErrUnsupportedTransform, o)
		}
	case "matrix":
		if len(o.Args) != 6 {
			break
		}

		a, b, c, d, e, f := o.Args[0], o.Args[1], o.Args[2], o.Args[3], o.Args[4], o.Args[5]
		if b != 0 || c != 0 || a != d {
			return Affine{}, fmt.Errorf("%w: %s is not a uniform scale", ErrUnsupportedTransform, o)
		}

		return Affine{Scale: a, Translate: Pt(CanvasPos(e), CanvasPos(f))}, nil
	default:
		return Affine{}, fmt.Errorf("%w: %s", ErrUnsupportedTransform, o.Name)
	}

	return Affine{}, fmt.Errorf("%w: wrong number of arguments in %s", ErrMalformedTransform, o)
}

// ParseTransform reads a transform attribute made of translate, uniform scale
// and uniform-scale matrix entries back into an Affine.
func ParseTransform(s string) (Affine, error) {
	ops, err := parseOps(s)
	if err != nil {
		return Affine{}, err
	}

	// the last entry of the list applies first
	result := Affine{Scale: 1, Degraded: true}
	for i := len(ops) - 1; i >= 0; i-- {
		next, err := ops[i].affine()
		if err != nil {
			return Affine{}, err
		}

		result = result.Then(next)
	}

	return result, nil
}
