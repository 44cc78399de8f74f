// Package web содержит встроенный браузерный интерфейс трекера задач.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler отдаёт статические файлы UI из бинарника
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Нарушение инварианта сборки: каталог static зашит в бинарник
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
