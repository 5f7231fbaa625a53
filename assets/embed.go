// Package assets embeds the default word lists used when no files are configured.
package assets

import (
	"bytes"
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func open(name string) (io.Reader, error) {
	b, err := FS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// Answers returns a reader over the embedded solution bank.
func Answers() (io.Reader, error) {
	return open("answers.txt")
}

// Allowed returns a reader over the embedded allowed-guess list.
func Allowed() (io.Reader, error) {
	return open("allowed.txt")
}
