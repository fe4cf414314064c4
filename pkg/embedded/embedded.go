package embedded

import (
	"embed"
	"io/fs"
)

// Embed builder data files
//
//go:embed data/catalog.yaml
var CatalogYAML []byte

//go:embed data/optimizer_prompt.txt
var OptimizerPromptTxt []byte

//go:embed static
var staticFiles embed.FS

// StaticFS returns the browser assets rooted at the static directory
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
