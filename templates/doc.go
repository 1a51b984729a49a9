// Package templates abstracts template expansion behind a Store: given a
// template name or an inline source string plus a variable map, a Store
// returns expanded text. The composition core never interprets template
// syntax itself; it only calls a Store.
//
// Two stores are provided. LiquidStore expands Liquid templates. GoStore
// expands text/template templates with the slim-sprig function map. Both load
// named templates from an fs.FS, so "templates live in a directory" works
// with os.DirFS and embedded filesystems alike.
package templates
