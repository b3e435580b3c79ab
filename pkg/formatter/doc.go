// Package formatter provides code formatting for .view files.
//
// Each node is lowered into printer operations: elements, fragments and
// attribute lists become groups that stay on one line when they fit and
// break otherwise; comments and doctypes never break. Embedded Go
// expressions are printed in gofmt style by GoValueRenderer.
//
//	f := formatter.New(formatter.DefaultSettings())
//	out, err := f.Format("page.view", src)
package formatter
