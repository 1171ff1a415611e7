// core/script/loader.go
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads an operation script from r. name is used in error messages.
//
// One operation per line, whitespace separated; blank lines and lines
// starting with '#' are ignored:
//
//	insert <pos> <len>
//	copy <id> <offset>
//	disable <id>
func Parse(r io.Reader, name string) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		op := Op{Line: ln}
		var argc int
		switch f[0] {
		case "insert":
			op.Kind, argc = Insert, 2
		case "copy":
			op.Kind, argc = Copy, 2
		case "disable":
			op.Kind, argc = Disable, 1
		default:
			return nil, fmt.Errorf("%s:%d unknown operation %q", name, ln, f[0])
		}
		if len(f) != argc+1 {
			return nil, fmt.Errorf("%s:%d %s takes %d argument(s), got %d", name, ln, f[0], argc, len(f)-1)
		}
		if _, err := fmt.Sscan(f[1], &op.A); err != nil {
			return nil, fmt.Errorf("%s:%d bad argument %q: %v", name, ln, f[1], err)
		}
		if argc == 2 {
			if _, err := fmt.Sscan(f[2], &op.B); err != nil {
				return nil, fmt.Errorf("%s:%d bad argument %q: %v", name, ln, f[2], err)
			}
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// Load parses the operation script at path.
func Load(path string) ([]Op, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path)
}
