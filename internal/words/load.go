package words

import (
	"fmt"
	"os"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// Load builds a List from files, falling back to the embedded defaults.
//
//  1. answersPath and allowedPath both set: load each from its file.
//  2. Only allowedPath set: that file serves as both lists.
//  3. Only answersPath set: that file serves as both lists.
//  4. Neither set: the embedded lists (5-letter words only).
func Load(answersPath, allowedPath string, length int) (*List, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		return LoadFiles(answersPath, allowedPath, length)
	case allowedPath != "":
		return LoadFiles(allowedPath, allowedPath, length)
	case answersPath != "":
		return LoadFiles(answersPath, answersPath, length)
	default:
		return LoadDefault(length)
	}
}

// LoadFiles reads the solution bank and allowed list from two files.
func LoadFiles(answersPath, allowedPath string, length int) (*List, error) {
	ans, err := readFile("answers", answersPath)
	if err != nil {
		return nil, err
	}
	all, err := readFile("allowed", allowedPath)
	if err != nil {
		return nil, err
	}
	return New(ans, all, length)
}

// LoadDefault builds a List from the embedded word lists.
func LoadDefault(length int) (*List, error) {
	if length != DefaultLength {
		return nil, fmt.Errorf("%w: embedded lists hold %d-letter words, want %d",
			ErrMalformedWordList, DefaultLength, length)
	}
	ans, err := assets.Answers()
	if err != nil {
		return nil, err
	}
	all, err := assets.Allowed()
	if err != nil {
		return nil, err
	}
	return Read(ans, all, length)
}

func readFile(name, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s list: %w", name, err)
	}
	defer f.Close()
	return readWords(name, f)
}
