package views

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// StaticFS holds the stylesheet and other assets shipped with the binary,
// rooted so that css/site.css is served at /static/css/site.css
var StaticFS = mustSub(embedded, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("views: " + err.Error())
	}
	return sub
}
