// Package assets embeds the default word tables and SQL migrations.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed allowed.txt answers.txt graphemes.txt
var FS embed.FS

//go:embed migrations/*.sql
var migrations embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file, trimmed.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// AnswersList returns the "word,hint" lines of the answer list.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the extra accepted guesses.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}

// GraphemesList returns the "phoneme grapheme example" lines of the hint table.
func GraphemesList() ([]string, error) {
	return readLines("graphemes.txt")
}

// Migrations returns the SQL migrations, rooted so that files are named "NNN_name.sql".
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}
