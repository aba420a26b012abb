package sdgio

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/sdglinf/bisector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSite(t *testing.T) {
	t.Run("point", func(t *testing.T) {
		site, err := ParseSite("1.5, -3/4")
		require.NoError(t, err)
		require.IsType(t, bisector.PointSite{}, site)
		assert.Equal(t, "(3/2, -3/4)", site.String())
		assert.Equal(t, "3/2,-3/4", FormatSite(site))
	})

	t.Run("segment", func(t *testing.T) {
		site, err := ParseSite("0,0:10,20")
		require.NoError(t, err)
		require.IsType(t, bisector.SegmentSite{}, site)
		assert.Equal(t, "[(0, 0), (10, 20)]", site.String())
		assert.Equal(t, "0,0:10,20", FormatSite(site))
	})

	for _, bad := range []string{"", "1", "1,2,3", "a,1", "1,2:3", "1,2:1,2", "1,2:3,4:5,6", "1/0,2"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseSite(bad)
			assert.Error(t, err)
		})
	}
}

func TestDecodeAndRun(t *testing.T) {
	doc := `
op: segment
sites: ["4,3", "0,0", "4,-3", "0,6"]
vertices: ["3,0", "1,3"]
`
	q, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "segment", q.Op)
	assert.Len(t, q.Sites, 4)

	req, err := q.Resolve()
	require.NoError(t, err)
	result, err := req.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Segment{(3, 0) (2, 1) (2, 2) (1, 3)}", result.String())

	// Without vertices they are computed from the points.
	q.Vertices = nil
	req, err = q.Resolve()
	require.NoError(t, err)
	computed, err := req.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result.String(), computed.String())
}

func TestRunReportsFatalErrors(t *testing.T) {
	q := &Query{Op: "segment", Sites: []string{"0,0", "4,3", "4,-3", "0,6"}}
	req, err := q.Resolve()
	require.NoError(t, err)
	result, err := req.Run(context.Background())
	assert.Nil(t, result)
	var bisectorErr *bisector.Error
	require.ErrorAs(t, err, &bisectorErr)
	assert.Equal(t, bisector.Invariant, bisectorErr.Kind)

	q = &Query{Op: "line", Sites: []string{"0,0", "0,0"}}
	req, err = q.Resolve()
	require.NoError(t, err)
	_, err = req.Run(context.Background())
	require.ErrorAs(t, err, &bisectorErr)
	assert.Equal(t, bisector.Precondition, bisectorErr.Kind)
}

func TestResolveErrors(t *testing.T) {
	cases := map[string]Query{
		"unknown op":        {Op: "circle", Sites: []string{"0,0", "1,1"}},
		"too few sites":     {Op: "line", Sites: []string{"0,0"}},
		"vertex count":      {Op: "ray", Sites: []string{"0,0", "1,1", "2,0"}, Vertices: []string{"1,0", "2,2"}},
		"bad site":          {Op: "line", Sites: []string{"0,0", "x,1"}},
		"bad vertex":        {Op: "ray", Sites: []string{"0,0", "1,1", "2,0"}, Vertices: []string{"1"}},
		"segments need one": {Op: "ray", Sites: []string{"0,0", "1,1:5,1", "2,0"}},
	}
	for name, q := range cases {
		q := q
		t.Run(name, func(t *testing.T) {
			_, err := q.Resolve()
			assert.Error(t, err)
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("op: line\nsites: [\"0,0\", \"1,0\"]\ncolor: red\n"))
	assert.Error(t, err)
}

func TestQueryRoundTrip(t *testing.T) {
	q := &Query{Op: "ray", Sites: []string{"-5,2", "0,0:10,0", "0,0"}, Vertices: []string{"-5/2,5/2"}}
	var buf bytes.Buffer
	require.NoError(t, q.Encode(&buf))
	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, q, again)

	req, err := again.Resolve()
	require.NoError(t, err)
	result, err := req.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ray{(-5/2, 5/2) -> <+1, +1>}", result.String())
}

func TestLoadQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	require.NoError(t, os.WriteFile(path, []byte("op: line\nsites: [\"0,0\", \"4,3\"]\n"), 0o644))
	q, err := LoadQuery(path)
	require.NoError(t, err)
	assert.Equal(t, "line", q.Op)

	_, err = LoadQuery(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <g>
    <line x1="0" y1="0" x2="10" y2="20" stroke="black" />
  </g>
  <rect x="0" y="0" width="1" height="1" />
  <circle cx="0" cy="10.5" r="1" />
  <circle cy="3" r="1" />
</svg>`
	sites, err := ReadSVG(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sites, 3)
	assert.Equal(t, "[(0, 0), (10, 20)]", sites[0].String())
	assert.Equal(t, "(0, 21/2)", sites[1].String())
	assert.Equal(t, "(0, 3)", sites[2].String())

	_, err = ReadSVG(strings.NewReader(`<svg><line x1="1" y1="1" x2="1" y2="1" /></svg>`))
	assert.Error(t, err)
	_, err = ReadSVG(strings.NewReader(`<svg><circle cx="one" cy="1" /></svg>`))
	assert.Error(t, err)
}
