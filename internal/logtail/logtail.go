package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLines is the tail length used when Options.Lines is not positive.
const DefaultLines = 50

// Options select which lines Read returns.
type Options struct {
	Lines    int
	MinLevel log.Level // lines below this level are skipped
}

// Read returns the last lines of the log file at path that are at or above
// opts.MinLevel. A missing file yields no lines.
func Read(path string, opts Options) ([]string, error) {
	maxLines := opts.Lines
	if maxLines <= 0 {
		maxLines = DefaultLines
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()
		if lineLevel(line) < opts.MinLevel {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// levelTokens are the abbreviations the text formatter writes.
var levelTokens = map[string]log.Level{
	"DEBU": log.DebugLevel,
	"INFO": log.InfoLevel,
	"WARN": log.WarnLevel,
	"ERRO": log.ErrorLevel,
	"FATA": log.FatalLevel,
}

// lineLevel finds the level token in a formatted line. Lines without one,
// such as wrapped continuation lines, count as info.
func lineLevel(line string) log.Level {
	for _, field := range strings.Fields(line) {
		if level, ok := levelTokens[field]; ok {
			return level
		}
	}
	return log.InfoLevel
}
