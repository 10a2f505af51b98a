package syncdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

const maxLineSize = 1024 * 1024

// linePattern binds a regexp to the way its groups map onto record fields.
// Patterns are unanchored and greedy, so "::" and "[...]" resolve to their
// last occurrence in the line.
type linePattern struct {
	re    *regexp.Regexp
	build func(m []string) (*Data, error)
}

// patterns are tried in order, first match wins
var patterns = []linePattern{
	{
		re: regexp.MustCompile(`(.*) : (.*)::(.*) \[(.*)\]`),
		build: func(m []string) (*Data, error) {
			return NewData(m[1], m[2], m[3], m[4])
		},
	},
	{
		re: regexp.MustCompile(`(.*) : (.*)::(.*)`),
		build: func(m []string) (*Data, error) {
			return NewData(m[1], m[2], m[3], "")
		},
	},
	{
		re: regexp.MustCompile(`(.*) : (.*) \[(.*)\]`),
		build: func(m []string) (*Data, error) {
			return NewData(m[1], "", m[2], m[3])
		},
	},
	{
		re: regexp.MustCompile(`(.*) : (.*)`),
		build: func(m []string) (*Data, error) {
			return NewData(m[1], "", m[2], "")
		},
	},
}

// ParseLine converts one description line into a record.
// It returns nil without error for comments and unrecognized lines.
func ParseLine(line string) (*Data, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") {
		return nil, nil
	}
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			return p.build(m)
		}
	}
	return nil, nil
}

// Parse reads the description and returns records in first-seen order
func Parse(r io.Reader) ([]*Data, error) {
	var datas []*Data
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		d, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if d == nil {
			if s := strings.TrimSpace(text); s != "" && !strings.HasPrefix(s, "#") {
				log.Debug().Int("line", lineNo).Str("text", s).
					Msg("skip unrecognized line")
			}
			continue
		}
		log.Trace().Int("line", lineNo).Stringer("data", d).Msg("parsed")
		datas = append(datas, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return datas, nil
}

// ParseFile opens and parses the description file
func ParseFile(path string) ([]*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	datas, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return datas, nil
}
