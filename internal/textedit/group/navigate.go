package group

// NextStart returns the index reached by skipping the group at i and any
// whitespace after it, i.e. the start of the next non-whitespace group, or
// len(s) when there is none. Indices are clamped to [0, len(s)].
func NextStart(s []rune, i int, classify Classifier) int {
	if classify == nil {
		classify = ByWhitespace
	}
	n := len(s)
	i = clampIndex(i, n)
	if i >= n {
		return n
	}

	cls := classify(s[i])
	for i < n && classify(s[i]) == cls {
		i++
	}
	for i < n && classify(s[i]) == Whitespace {
		i++
	}
	return i
}

// PreviousStart is the mirror of NextStart: it skips any whitespace before i
// and then the group before that, returning the start of that group, or 0.
func PreviousStart(s []rune, i int, classify Classifier) int {
	if classify == nil {
		classify = ByWhitespace
	}
	i = clampIndex(i, len(s))

	for i > 0 && classify(s[i-1]) == Whitespace {
		i--
	}
	if i == 0 {
		return 0
	}
	cls := classify(s[i-1])
	for i > 0 && classify(s[i-1]) == cls {
		i--
	}
	return i
}

// At returns the bounds [start, end) of the group containing index i. An
// index at the end of s selects the last group. Empty input yields (0, 0).
func At(s []rune, i int, classify Classifier) (start, end int) {
	if classify == nil {
		classify = ByWhitespace
	}
	n := len(s)
	if n == 0 {
		return 0, 0
	}
	i = clampIndex(i, n)
	if i == n {
		i = n - 1
	}

	cls := classify(s[i])
	start, end = i, i+1
	for start > 0 && classify(s[start-1]) == cls {
		start--
	}
	for end < n && classify(s[end]) == cls {
		end++
	}
	return start, end
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
