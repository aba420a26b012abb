package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/osuushi/sdglinf/bisector"
	"github.com/osuushi/sdglinf/sdgio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Computes one bisector and prints it. Sites are given as x,y for points and
// x,y:x,y for segments, with exact coordinates such as 1.5 or 3/4. Put "--"
// before the sites when one starts with a minus sign.
//
//	linfbisect line 0,0 4,3
//	linfbisect ray --vertex=3,0 -- 4,3 0,0 4,-3
//	linfbisect segment --png out.png --imgcat 4,3 0,0 4,-3 0,6
//	linfbisect run query.yaml
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	svg     string
	png     string
	imgcat  bool
	trace   bool
	log     bool
	noColor bool
	scale   float64
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	app := kingpin.New("linfbisect", "Exact L∞ bisectors between point and segment sites.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(func(code int) { panic(exitRequest(code)) })
	app.Flag("svg", "Append the sites drawn in an SVG file (circles are points, lines are segments).").ExistingFileVar(&opts.svg)
	app.Flag("png", "Render the sites and the bisector to a PNG file.").StringVar(&opts.png)
	app.Flag("imgcat", "Print the rendering to an iTerm-compatible terminal.").BoolVar(&opts.imgcat)
	app.Flag("trace", "Trace each construction to stderr.").BoolVar(&opts.trace)
	app.Flag("log", "Trace each construction to stderr as JSON.").BoolVar(&opts.log)
	app.Flag("no-color", "Do not color traces.").BoolVar(&opts.noColor)
	app.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64Var(&opts.scale)

	lineCmd := app.Command("line", "Bisector of sites P and Q.")
	lineSites := lineCmd.Arg("sites", "P Q").Strings()

	rayCmd := app.Command("ray", "Bisector of P and Q starting at the vertex of P, Q, R.")
	raySites := rayCmd.Arg("sites", "P Q R").Strings()
	rayVertices := rayCmd.Flag("vertex", "Vertex of P, Q, R. Computed when all sites are points.").Strings()

	segmentCmd := app.Command("segment", "Bisector of P and Q between the vertices of P, Q, R and of Q, P, S.")
	segmentSites := segmentCmd.Arg("sites", "P Q R S").Strings()
	segmentVertices := segmentCmd.Flag("vertex", "Vertex of P, Q, R, then vertex of Q, P, S.").Strings()

	runCmd := app.Command("run", "Run a YAML query document.")
	queryFile := runCmd.Arg("file", "Query document with op, sites and vertices.").Required().ExistingFile()

	command, exit, err := parse(app, args)
	if exit >= 0 {
		return exit
	}
	if err != nil {
		fmt.Fprintf(stderr, "linfbisect: %v\n", err)
		return 2
	}

	var q *sdgio.Query
	switch command {
	case lineCmd.FullCommand():
		q = &sdgio.Query{Op: string(bisector.OpLine), Sites: *lineSites}
	case rayCmd.FullCommand():
		q = &sdgio.Query{Op: string(bisector.OpRay), Sites: *raySites, Vertices: *rayVertices}
	case segmentCmd.FullCommand():
		q = &sdgio.Query{Op: string(bisector.OpSegment), Sites: *segmentSites, Vertices: *segmentVertices}
	case runCmd.FullCommand():
		q, err = sdgio.LoadQuery(*queryFile)
	}
	if err == nil {
		err = execute(q, opts, stdout, stderr)
	}
	if err != nil {
		if opts.trace {
			fmt.Fprintf(stderr, "linfbisect: %+v\n", err)
		} else {
			fmt.Fprintf(stderr, "linfbisect: %v\n", err)
		}
		return 1
	}
	return 0
}

// kingpin asks to exit once it has printed help. run returns a code instead,
// so the request unwinds Parse as an exitRequest panic and is caught here.
type exitRequest int

func parse(app *kingpin.Application, args []string) (command string, exit int, err error) {
	exit = -1
	defer func() {
		if r := recover(); r != nil {
			code, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			exit = int(code)
		}
	}()
	command, err = app.Parse(args)
	return command, exit, err
}

func execute(q *sdgio.Query, opts options, stdout, stderr io.Writer) error {
	if opts.svg != "" {
		sites, err := sdgio.LoadSVG(opts.svg)
		if err != nil {
			return err
		}
		for _, s := range sites {
			q.Sites = append(q.Sites, sdgio.FormatSite(s))
		}
	}
	req, err := q.Resolve()
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch {
	case opts.log:
		logger := zap.New(zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(stderr),
			zapcore.DebugLevel,
		))
		defer logger.Sync()
		ctx = bisector.WithTracer(ctx, bisector.LogTracer{Logger: logger})
	case opts.trace:
		ctx = bisector.WithTracer(ctx, bisector.NewTextTracer(stderr, !opts.noColor))
	}
	result, err := req.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, result)

	png := opts.png
	if png == "" && opts.imgcat {
		dir, err := os.MkdirTemp("", "linfbisect")
		if err != nil {
			return errors.Wrap(err, "creating render directory")
		}
		defer os.RemoveAll(dir)
		png = filepath.Join(dir, "bisector.png")
	}
	if png == "" {
		return nil
	}
	if err := bisector.Render(png, req.Sites, result, opts.scale); err != nil {
		return err
	}
	if opts.imgcat {
		return bisector.Show(png)
	}
	return nil
}
