package main

import (
	"fmt"
	"iter"

	"github.com/clarete/rxparse"
)

// compilePattern builds the parser of a search pattern.  Runes match
// themselves in order, `.` matches any rune, `\` escapes the next rune
// and `{...}` is a group whose runes match in any order.  Groups keep
// their position in the sequence, so `{12}{34}` matches "2143" but not
// "3124".
func compilePattern(pattern string) (rxparse.Parser[rune, iter.Seq[rune]], error) {
	var (
		seq   rxparse.Parser[rune, iter.Seq[rune]]
		group []rxparse.Parser[rune, rune]
		open  = -1
	)

	appendPart := func(part rxparse.Parser[rune, iter.Seq[rune]]) {
		if seq == nil {
			seq = part
			return
		}
		seq = rxparse.ManyAndMany(seq, part)
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		var elem rxparse.Parser[rune, rune]
		switch c := runes[i]; c {
		case '{':
			if open >= 0 {
				return nil, fmt.Errorf("nested group at %d", i)
			}
			open, group = i, nil
			continue
		case '}':
			if open < 0 {
				return nil, fmt.Errorf("unbalanced `}` at %d", i)
			}
			if len(group) == 0 {
				return nil, fmt.Errorf("empty group at %d", open)
			}
			appendPart(rxparse.AllUnordered(group...))
			open = -1
			continue
		case '.':
			elem = rxparse.AnyElement[rune]()
		case '\\':
			if i+1 == len(runes) {
				return nil, fmt.Errorf("dangling escape at %d", i)
			}
			i++
			elem = rxparse.Element(runes[i])
		default:
			elem = rxparse.Element(c)
		}
		if open >= 0 {
			group = append(group, elem)
			continue
		}
		if seq == nil {
			seq = rxparse.All(elem)
			continue
		}
		seq = rxparse.ManyAnd(seq, elem)
	}

	if open >= 0 {
		return nil, fmt.Errorf("unclosed group at %d", open)
	}
	if seq == nil {
		return nil, fmt.Errorf("empty pattern")
	}
	return seq, nil
}
