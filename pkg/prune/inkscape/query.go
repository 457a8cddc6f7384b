package inkscape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gucio321/iconport/pkg/prune"
)

var whitespace = regexp.MustCompile(`\s+`)

// ParseQueryAll reads query-all output. Inkscape versions differ in the
// separator, so "id,x,y,w,h", "id: x : y : w : h" and "id x y w h" lines are
// all accepted; anything else (prompts, warnings) is skipped.
func ParseQueryAll(out []byte) map[string]prune.Box {
	result := make(map[string]prune.Box)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, fields := range [][]string{
			strings.Split(line, ","),
			strings.Split(line, ":"),
			whitespace.Split(line, -1),
		} {
			id, box, ok := parseFields(fields)
			if ok {
				result[id] = box
				break
			}
		}
	}

	return result
}

func parseFields(fields []string) (string, prune.Box, bool) {
	if len(fields) != 5 {
		return "", prune.Box{}, false
	}

	id := strings.TrimSpace(fields[0])
	if id == "" {
		return "", prune.Box{}, false
	}

	var v [4]float64
	for i, f := range fields[1:] {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return "", prune.Box{}, false
		}

		v[i] = n
	}

	return id, prune.Box{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, true
}
