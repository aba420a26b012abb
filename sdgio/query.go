package sdgio

import (
	"context"
	"io"
	"os"

	"github.com/osuushi/sdglinf/bisector"
	"github.com/osuushi/sdglinf/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Query is a bisector request as written in a YAML document:
//
//	op: segment
//	sites: ["4,3", "0,0", "4,-3", "0,6"]
//	vertices: ["3,0", "1,3"]
//
// Vertices may be left out when every site is a point; they are then
// computed.
type Query struct {
	Op       string   `yaml:"op"`
	Sites    []string `yaml:"sites"`
	Vertices []string `yaml:"vertices,omitempty"`
}

// Request is a Query with its sites and vertices parsed and checked against
// the operation.
type Request struct {
	Op       bisector.Op
	Sites    []bisector.Site
	Vertices []geom.Point
}

// Decode reads one query document.
func Decode(r io.Reader) (*Query, error) {
	var q Query
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&q); err != nil {
		return nil, errors.Wrap(err, "decoding query")
	}
	return &q, nil
}

// LoadQuery decodes the query document at path.
func LoadQuery(path string) (*Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	q, err := Decode(f)
	return q, errors.Wrapf(err, "reading %s", path)
}

// Encode writes the query as YAML.
func (q *Query) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(q); err != nil {
		return errors.Wrap(err, "encoding query")
	}
	return errors.Wrap(enc.Close(), "encoding query")
}

var arity = map[bisector.Op]struct{ sites, vertices int }{
	bisector.OpLine:    {2, 0},
	bisector.OpRay:     {3, 1},
	bisector.OpSegment: {4, 2},
}

// Resolve parses the sites and vertices.
func (q *Query) Resolve() (*Request, error) {
	op := bisector.Op(q.Op)
	want, ok := arity[op]
	if !ok {
		return nil, errors.Errorf("unknown operation %q", q.Op)
	}
	if len(q.Sites) != want.sites {
		return nil, errors.Errorf("%s takes %d sites, got %d", op, want.sites, len(q.Sites))
	}
	if len(q.Vertices) != 0 && len(q.Vertices) != want.vertices {
		return nil, errors.Errorf("%s takes %d vertices, got %d", op, want.vertices, len(q.Vertices))
	}

	req := &Request{Op: op}
	for _, s := range q.Sites {
		site, err := ParseSite(s)
		if err != nil {
			return nil, err
		}
		req.Sites = append(req.Sites, site)
	}
	for _, v := range q.Vertices {
		p, err := ParsePoint(v)
		if err != nil {
			return nil, errors.Wrap(err, "vertex")
		}
		req.Vertices = append(req.Vertices, p)
	}
	if len(req.Vertices) == 0 && want.vertices > 0 {
		for _, site := range req.Sites {
			if !site.IsPoint() {
				return nil, errors.Errorf("%s with segment sites needs %d vertices", op, want.vertices)
			}
		}
	}
	return req, nil
}

// VertexConstructor answers the vertex queries the request's operation will
// make: the given vertices when there are some, computed point vertices
// otherwise.
func (r *Request) VertexConstructor() bisector.VertexConstructor {
	if len(r.Vertices) == 0 {
		return bisector.PointVertices
	}
	table := bisector.NewVertexTable()
	s := r.Sites
	switch r.Op {
	case bisector.OpRay:
		table.Add(s[0], s[1], s[2], r.Vertices[0])
	case bisector.OpSegment:
		table.Add(s[0], s[1], s[2], r.Vertices[0])
		table.Add(s[1], s[0], s[3], r.Vertices[1])
	}
	return table
}

// Run performs the request. Fatal assertions in the construction come back
// as a *bisector.Error.
func (r *Request) Run(ctx context.Context) (result bisector.Polychain, err error) {
	defer func() {
		if recoveredErr := bisector.HandleBisectorPanicRecover(recover()); recoveredErr != nil {
			result, err = nil, recoveredErr
		}
	}()

	c := bisector.Constructor{Vertices: r.VertexConstructor()}
	s := r.Sites
	switch r.Op {
	case bisector.OpLine:
		return c.Line(ctx, s[0], s[1]), nil
	case bisector.OpRay:
		return c.Ray(ctx, s[0], s[1], s[2]), nil
	case bisector.OpSegment:
		return c.Segment(ctx, s[0], s[1], s[2], s[3]), nil
	}
	return nil, errors.Errorf("unknown operation %q", r.Op)
}
