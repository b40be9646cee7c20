// Package tokenizer splits free text into addressable word units for the
// clickable reading view. It is a pure leaf: no I/O, no dependencies, total
// on any input.
package tokenizer

// Segment is one piece of the tokenized text. Concatenating the Text of every
// segment, in order, reconstructs the input exactly.
//
// A word-bearing segment carries the word in Word plus the punctuation runs
// immediately around it; whitespace and pure-punctuation runs carry only Text.
type Segment struct {
	Text     string
	Leading  string
	Word     string
	Trailing string
}

// IsWord reports whether the segment carries a clickable word.
func (s Segment) IsWord() bool { return s.Word != "" }

// isWordRune reports whether r belongs to the word alphabet: ASCII letters
// plus Polish diacritic letters in both cases. Digits and underscores are
// punctuation here; they never become part of a word.
func isWordRune(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	switch r {
	case 'ą', 'ć', 'ę', 'ł', 'ń', 'ó', 'ś', 'ź', 'ż',
		'Ą', 'Ć', 'Ę', 'Ł', 'Ń', 'Ó', 'Ś', 'Ź', 'Ż':
		return true
	}
	return false
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Tokenize splits text into an ordered sequence of segments. Whitespace runs
// pass through untouched; within each non-whitespace chunk, every maximal run
// of alphabet characters becomes its own word-bearing segment with the
// surrounding punctuation attached. A chunk with no alphabet characters at
// all passes through unmodified.
//
// Words with internal punctuation ("biało-czerwony") therefore split into
// several word-bearing segments, with the separator attached as the leading
// punctuation of the later word. That is the intended behavior, not a gap.
func Tokenize(text string) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	runes := []rune(text)

	i := 0
	for i < len(runes) {
		start := i
		space := isSpaceRune(runes[i])
		for i < len(runes) && isSpaceRune(runes[i]) == space {
			i++
		}
		chunk := runes[start:i]
		if space {
			segments = append(segments, Segment{Text: string(chunk)})
			continue
		}
		segments = append(segments, splitChunk(chunk)...)
	}

	return segments
}

// splitChunk decomposes one whitespace-free chunk into word-bearing segments.
func splitChunk(chunk []rune) []Segment {
	// Alternating runs of punctuation and alphabet characters.
	type run struct {
		text []rune
		word bool
	}
	var runs []run
	i := 0
	for i < len(chunk) {
		start := i
		word := isWordRune(chunk[i])
		for i < len(chunk) && isWordRune(chunk[i]) == word {
			i++
		}
		runs = append(runs, run{text: chunk[start:i], word: word})
	}

	lastWord := -1
	for idx, r := range runs {
		if r.word {
			lastWord = idx
		}
	}
	if lastWord == -1 {
		// Pure punctuation, pass through.
		return []Segment{{Text: string(chunk)}}
	}

	var segments []Segment
	var pending []rune // punctuation not yet attached to a word
	for idx, r := range runs {
		if !r.word {
			pending = append(pending, r.text...)
			continue
		}

		seg := Segment{
			Leading: string(pending),
			Word:    string(r.text),
		}
		pending = nil

		// The punctuation run after the last word is its trailing; runs
		// between words become the next word's leading.
		if idx == lastWord && idx+1 < len(runs) {
			seg.Trailing = string(runs[idx+1].text)
		}
		seg.Text = seg.Leading + seg.Word + seg.Trailing
		segments = append(segments, seg)

		if idx == lastWord {
			break
		}
	}

	return segments
}
