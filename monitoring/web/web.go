// Package web includes the static web page for the monitoring tool.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html
var staticAssets embed.FS

// GetAssets returns the static assets.
func GetAssets() http.FileSystem {
	return http.FS(staticAssets)
}
