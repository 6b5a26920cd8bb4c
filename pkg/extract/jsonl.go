package extract

import (
	"bufio"
	"io"
	"os"
)

// Session transcripts can carry whole file contents on a single line,
// so the scanner buffer is sized well past bufio's default.
const maxLineSize = 16 * 1024 * 1024

// forEachLine calls fn for every line of the file at path, including
// empty ones, and returns the total line count. The callback decides
// what to do with lines that do not parse; a bad line never stops the
// scan.
func forEachLine(path string, fn func(line []byte)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return scanLines(f, fn)
}

func scanLines(r io.Reader, fn func(line []byte)) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lines := 0
	for scanner.Scan() {
		lines++
		if fn != nil {
			fn(scanner.Bytes())
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, err
	}
	return lines, nil
}
