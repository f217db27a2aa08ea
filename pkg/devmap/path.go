package devmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// pathLexer tokenizes dotted field paths such as "jtag.slrs[2].fuse_dna".
var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[.\[\]]`},
})

// pathAST is the grammar of a field path: segment ( "." segment )*.
type pathAST struct {
	Segments []*segmentAST `@@ ( "." @@ )*`
}

type segmentAST struct {
	Name  string `@Ident`
	Index *int   `( "[" @Int "]" )?`
}

var pathParser = participle.MustBuild[pathAST](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
)

// Segment is one step of a Path. Index is only meaningful when HasIndex is set.
type Segment struct {
	Name     string
	Index    int
	HasIndex bool
}

func (s Segment) String() string {
	if s.HasIndex {
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}

// Path is a parsed field path.
type Path struct {
	segments []Segment
}

// ParsePath parses a dotted field path. Sequence elements are addressed with
// a bracketed index: "registers.slrs[0].ctl0".
func ParsePath(s string) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return Path{}, fmt.Errorf("devmap: %w: empty path", ErrInvalidPath)
	}
	ast, err := pathParser.ParseString("", s)
	if err != nil {
		return Path{}, fmt.Errorf("devmap: %w %q: %v", ErrInvalidPath, s, err)
	}
	p := Path{segments: make([]Segment, len(ast.Segments))}
	for i, seg := range ast.Segments {
		p.segments[i] = Segment{Name: seg.Name}
		if seg.Index != nil {
			p.segments[i].Index = *seg.Index
			p.segments[i].HasIndex = true
		}
	}
	return p, nil
}

// MustParsePath is ParsePath for paths known at compile time. It panics on a
// malformed path.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

func (p Path) String() string {
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
