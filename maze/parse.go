package maze

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a maze in the plain-text format:
//
//	n                 grid side length
//	a b c ...         neighbors of node 0
//	...               one line per node, n² lines in total
//	g                 goal node
//
// Neighbor indices are separated by whitespace; an empty line means the node
// has no neighbors. Blank lines are not skipped, because each line position
// is a node index. Returns the Maze, the goal node, and ErrSyntax (wrapped
// with the 1-based line number) or ErrTruncated on malformed input. A side
// above MaxSide is an ErrSyntax.
// Parse does not call Validate; callers that need a closed graph should.
func Parse(r io.Reader, opts ...Option) (*Maze, Node, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("maze: read line %d: %w", line+1, err)
			}
			return "", fmt.Errorf("%w at line %d", ErrTruncated, line+1)
		}
		line++
		return strings.TrimSpace(sc.Text()), nil
	}

	head, err := next()
	if err != nil {
		return nil, 0, err
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return nil, 0, fmt.Errorf("%w: line %d: bad size %q", ErrSyntax, line, head)
	}
	if n > MaxSide {
		return nil, 0, fmt.Errorf("%w: line %d: size %d exceeds %d", ErrSyntax, line, n, MaxSide)
	}

	// the header is untrusted; grow with the lines actually read
	entries := make([]Entry, 0, min(n*n, 1024))
	for i := 0; i < n*n; i++ {
		text, err := next()
		if err != nil {
			return nil, 0, err
		}
		nbrs, err := parseInts(text)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
		}
		entries = append(entries, Entry{Node: Node(i), Neighbors: nbrs})
	}

	tail, err := next()
	if err != nil {
		return nil, 0, err
	}
	goal, err := strconv.Atoi(tail)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: line %d: bad goal %q", ErrSyntax, line, tail)
	}

	m, err := New(n, entries, opts...)
	if err != nil {
		return nil, 0, err
	}

	return m, Node(goal), nil
}

// Format writes m and goal in the text format accepted by Parse.
// Only grid mazes (Size() > 0) whose keys cover [0, size²) round-trip.
func Format(w io.Writer, m *Maze, goal Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, m.size)
	for i := 0; i < m.size*m.size; i++ {
		nbrs := m.adj[Node(i)]
		for j, nb := range nbrs {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(nb)))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, int(goal))

	return bw.Flush()
}

func parseInts(s string) ([]Node, error) {
	fields := strings.Fields(s)
	out := make([]Node, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad node %q", f)
		}
		out = append(out, Node(v))
	}

	return out, nil
}
