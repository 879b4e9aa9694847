package comments

import "strings"

// Example is a usage sample extracted from a doc comment
type Example struct {
	Language string // language tag from the fence, may be empty
	Code     string // example body with the fence markers removed
	Caption  string // caption line preceding the fence, may be empty
}

// Extraction is the result of pulling examples out of a raw comment
type Extraction struct {
	Examples []Example // examples found, in order of appearance
	Comment  string    // comment body with example blocks removed
}

// ExtractExamples scans a raw doc comment for fenced example blocks and
// returns the examples together with the reduced comment. A caption line
// mentioning "example" directly above a fence is attached to the example
// and removed from the comment as well. Returns nil when the comment is
// empty.
func ExtractExamples(raw string) *Extraction {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")
	var kept []string
	var examples []Example

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if !strings.HasPrefix(trimmed, "```") {
			kept = append(kept, line)
			continue
		}

		// Fence opened; collect until the closing fence. An unterminated
		// fence swallows the rest of the comment, matching how markdown
		// renderers treat it.
		language := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		var body []string
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "```" {
				break
			}
			body = append(body, lines[j])
		}

		caption := ""
		if n := len(kept); n > 0 && isCaptionLine(kept[n-1]) {
			caption = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(kept[n-1]), ":"))
			kept = kept[:n-1]
		}

		examples = append(examples, Example{
			Language: language,
			Code:     strings.Join(body, "\n"),
			Caption:  caption,
		})

		i = j
	}

	return &Extraction{
		Examples: examples,
		Comment:  collapseBlank(kept),
	}
}

// isCaptionLine reports whether a comment line introduces an example block
func isCaptionLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasSuffix(trimmed, ":") {
		return false
	}
	return strings.Contains(strings.ToLower(trimmed), "example")
}

// collapseBlank joins lines, squeezing runs of blank lines left behind by
// removed example blocks down to a single blank line
func collapseBlank(lines []string) string {
	var out []string
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
