// Package emitter renders the process sync data artifacts.
//
// Every emitter is a pure function of the ordered records: it takes the
// output of syncdata.Order and returns the artifact text. Records gated by a
// conditional get their contribution wrapped in "#if <expr>" / "#endif".
package emitter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gwos/syncdatagen/syncdata"
)

// DefaultNamespace is the C++ namespace of the generated code
const DefaultNamespace = "WebCore"

// Options defines the values substituted into boilerplate
type Options struct {
	Namespace string
	License   string
}

func (opts Options) withDefaults() Options {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.License == "" {
		opts.License = DefaultLicense
	}
	opts.License = strings.TrimRight(opts.License, "\n")
	return opts
}

// Emitter renders one artifact from records in variant order
type Emitter func(opts Options, datas []*syncdata.Data) string

// Artifact binds an output file name with its emitter
type Artifact struct {
	Name string
	Emit Emitter
}

// Artifacts is the fixed catalog of generated files
var Artifacts = []Artifact{
	{"ProcessSyncClient.h", ClientHeader},
	{"ProcessSyncClient.cpp", ClientImpl},
	{"ProcessSyncData.h", DataHeader},
	{"ProcessSyncData.serialization.in", SerializationIn},
	{"DocumentSyncData.h", DocumentHeader},
	{"DocumentSyncData.cpp", DocumentImpl},
}

// File is a rendered artifact
type File struct {
	Name    string
	Content []byte
}

// All renders the whole catalog in order
func All(opts Options, datas []*syncdata.Data) []File {
	files := make([]File, 0, len(Artifacts))
	for _, a := range Artifacts {
		files = append(files, File{
			Name:    a.Name,
			Content: []byte(a.Emit(opts, datas)),
		})
	}
	return files
}

// lines collects output chunks joined by newlines on String
type lines []string

func (l *lines) add(s ...string) {
	*l = append(*l, s...)
}

func (l *lines) addf(format string, a ...any) {
	*l = append(*l, fmt.Sprintf(format, a...))
}

// render panics on failure as templates and their data are static
func (l *lines) render(t *template.Template, opts Options) {
	var b strings.Builder
	if err := t.Execute(&b, opts); err != nil {
		panic(fmt.Sprintf("emitter: template %s: %v", t.Name(), err))
	}
	*l = append(*l, b.String())
}

func (l *lines) includes(headers []string) {
	for _, h := range headers {
		l.addf("#include %s", h)
	}
}

// guarded wraps the record contribution into the record conditional
func (l *lines) guarded(d *syncdata.Data, fn func()) {
	if d.IsConditional() {
		l.addf("#if %s", d.Conditional)
	}
	fn()
	if d.IsConditional() {
		l.add("#endif")
	}
}

// placeholders aliases conditional types to bool when compiled out
func (l *lines) placeholders(datas []*syncdata.Data, typeName func(*syncdata.Data) string) {
	for _, d := range datas {
		if !d.IsConditional() {
			continue
		}
		l.addf("#if !%s", d.Conditional)
		l.addf("using %s = bool;", typeName(d))
		l.add("#endif")
	}
}

func (l lines) String() string {
	return strings.Join(l, "\n")
}
