package main

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/henderiw/rangekit/pkg/array"
	"github.com/henderiw/rangekit/pkg/rng"
	"k8s.io/klog/v2"
)

const maxLineSize = 1024 * 1024

type options struct {
	ignoreCase bool
	skipFields int
	match      string
	count      bool
}

// key is the part of a line that takes part in the comparison.
func (o options) key(s string) string {
	if o.skipFields > 0 {
		fields := strings.Fields(s)
		if o.skipFields >= len(fields) {
			s = ""
		} else {
			s = strings.Join(fields[o.skipFields:], " ")
		}
	}
	if o.ignoreCase {
		s = strings.ToLower(s)
	}
	return s
}

type line struct {
	text  string
	key   string
	count int
}

func run(opts options, in io.Reader, out io.Writer) error {
	if opts.skipFields < 0 {
		return fmt.Errorf("skip-fields %d cannot be negative", opts.skipFields)
	}
	var re *regexp.Regexp
	if opts.match != "" {
		var err error
		if re, err = regexp.Compile(opts.match); err != nil {
			return fmt.Errorf("invalid match expression: %w", err)
		}
	}

	var lines []*line
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		text := scanner.Text()
		lines = append(lines, &line{text: text, key: opts.key(text), count: 1})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	src := array.Of(lines)
	if re != nil {
		dest := array.New[*line](src.Len())
		end := rng.CopyIf(src, dest, dest.Start(), func(l *line) bool {
			return re.MatchString(l.text)
		})
		klog.V(2).InfoS("filtered input", "lines", src.Len(), "matched", end)
		src = array.Of(dest.Prefix(end))
	}

	// the predicate always receives the representative of the current run
	// first, so it can count the lines folded into it
	end := rng.UniqueBy(src, func(kept, next *line) bool {
		if kept.key != next.key {
			return false
		}
		kept.count++
		return true
	})
	klog.V(2).InfoS("compacted input", "lines", src.Len(), "runs", end)

	w := bufio.NewWriter(out)
	for _, l := range src.Prefix(end) {
		if opts.count {
			fmt.Fprintf(w, "%7d %s\n", l.count, l.text)
			continue
		}
		fmt.Fprintln(w, l.text)
	}
	return w.Flush()
}
