// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"io"
	"path/filepath"

	"github.com/google/safehtml/template"
	"github.com/lsmtree/perf/benchunit"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Charts}}
<h2>{{.Title}}</h2>
<p>{{.Points}} points, y from {{.YMin}} to {{.YMax}}{{with .YUnit}} {{.}}{{end}}</p>
<a href="{{.Href}}"><img src="{{.Href}}" alt="{{.Title}}" width="640"></a>
{{- if .CSV}}
<p><a href="{{.CSV}}">data</a></p>
{{- end}}
{{end}}
</body>
</html>
`))

type indexChart struct {
	Name, Title string
	Href, CSV   string
	Points      int
	YMin, YMax  string
	YUnit       string
}

// WriteIndex writes an HTML page titled title that shows every chart
// in results. Links are relative to dir, the directory the page will
// be stored in.
func WriteIndex(w io.Writer, title, dir string, results []*Result) error {
	data := struct {
		Title  string
		Charts []indexChart
	}{Title: title}
	for _, res := range results {
		sc := benchunit.CommonScale([]float64{res.YMin, res.YMax}, benchunit.ClassOf(res.Spec.YUnit))
		c := indexChart{
			Name:   res.Spec.Name,
			Title:  res.Spec.Title,
			Href:   relPath(dir, res.Spec.Output),
			Points: res.Points,
			YMin:   sc.Trim(res.YMin),
			YMax:   sc.Trim(res.YMax),
			YUnit:  res.Spec.YUnit,
		}
		if c.Title == "" {
			c.Title = c.Name
		}
		if res.Spec.CSV != "" {
			c.CSV = relPath(dir, res.Spec.CSV)
		}
		data.Charts = append(data.Charts, c)
	}
	return indexTemplate.Execute(w, data)
}

func relPath(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		path = rel
	}
	return filepath.ToSlash(path)
}
