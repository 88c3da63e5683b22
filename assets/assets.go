package assets

import "embed"

// DataFS embeds the bundled contract datasets. The viewer loads them once
// at startup; they are never written.
//
//go:embed data/*.json
var DataFS embed.FS

// DataDir is the directory inside DataFS holding the dataset files.
const DataDir = "data"
