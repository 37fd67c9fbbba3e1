package main

import (
	"io/fs"
	"os"
)

// Check panics on errors that mean the program itself is broken, as opposed to
// errors caused by bad input, which are returned to the caller.
func Check(e error) {
	if e != nil {
		panic(e)
	}
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

func FileExists(fsys fs.FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// ReadInput returns the contents of the puzzle input. Unlike the data files,
// the input comes from the user, so failing to read it is not a bug.
func ReadInput(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FloorDiv divides a by b and rounds towards negative infinity. b must be
// positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
