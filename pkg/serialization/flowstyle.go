package serialization

import "strings"

// inlineVertexLists rewrites block-style vertex sequences in a YAML
// document into inline [x, y] lists:
//
//	vertices:
//	  - - 0.1
//	    - 0.2
//
// becomes
//
//	vertices: [[0.1, 0.2]]
//
// It is a pure textual pass over the generically encoded output: a line
// whose trimmed content is exactly "vertices:" starts a rewrite, the
// following block-sequence lines are consumed until indentation decreases
// or the pattern breaks, and every other line passes through unchanged.
func inlineVertexLists(doc string) string {
	trailingNewline := strings.HasSuffix(doc, "\n")
	lines := strings.Split(doc, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}

	var out []string
	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) != "vertices:" {
			out = append(out, line)
			i++
			continue
		}
		i++

		// Indentation of the first block item bounds the sequence.
		itemIndent := 0
		if i < len(lines) {
			itemIndent = indentOf(lines[i])
		}

		var pairs []string
		for i < len(lines) {
			item := lines[i]
			trimmed := strings.TrimLeft(item, " ")
			if indentOf(item) < itemIndent || !strings.HasPrefix(trimmed, "- ") {
				break
			}

			if x, ok := strings.CutPrefix(trimmed, "- - "); ok {
				i++
				if i < len(lines) {
					yLine := strings.TrimLeft(lines[i], " ")
					if y, ok := strings.CutPrefix(yLine, "- "); ok {
						pairs = append(pairs, "["+strings.TrimSpace(x)+", "+strings.TrimSpace(y)+"]")
						i++
					}
				}
			} else {
				// Unexpected shape inside the block; skip the line.
				i++
			}
		}

		out = append(out, line+" ["+strings.Join(pairs, ", ")+"]")
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
