package main

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed data/*
var embeddedFiles embed.FS

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads data from
// disk can use a FS object and thus work the same if the files are embedded
// or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

// DataFS returns the directory with a data folder if there is one, so config
// and scenarios can be edited without rebuilding. Otherwise it returns the
// files embedded in the executable.
func DataFS(dir string) FS {
	fsys := os.DirFS(dir).(FS)
	if FileExists(fsys, "data") {
		return fsys
	}
	return &embeddedFiles
}
