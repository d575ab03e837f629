package strength

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed data/common.txt
var commonData string

//go:embed data/words.txt
var wordsData string

// MinLength is the shortest password that is not flagged as too short.
const MinLength = 12

// Issue identifies one weakness check. The declaration order is the order
// in which findings are reported.
type Issue int

const (
	IssueEmpty Issue = iota
	IssueContainsSpace
	IssueTooShort
	IssueLowVariety
	IssueCommonPattern
	IssueDictionaryWord
	IssuePersonalName
	IssuePersonalBirthdate
	IssueRepeatedChars
	IssueSequentialChars
)

type issueText struct {
	tag            string
	message        string
	recommendation string
}

var issueTable = map[Issue]issueText{
	IssueEmpty: {
		"empty",
		"Password is empty",
		"Enter a non-empty password",
	},
	IssueContainsSpace: {
		"containsSpace",
		"Password contains spaces",
		"Avoid using spaces in passwords",
	},
	IssueTooShort: {
		"tooShort",
		"Password is too short",
		"Use at least 12 characters",
	},
	IssueLowVariety: {
		"lowVariety",
		"Limited character variety",
		"Include a mix of uppercase, lowercase, numbers, and special characters",
	},
	IssueCommonPattern: {
		"commonPattern",
		"Contains common pattern or word",
		"Avoid common words or predictable patterns",
	},
	IssueDictionaryWord: {
		"dictionaryWord",
		"Contains dictionary word",
		"Avoid using common dictionary words",
	},
	IssuePersonalName: {
		"personalName",
		"Contains your name",
		"Avoid using your name or parts of it",
	},
	IssuePersonalBirthdate: {
		"personalBirthdate",
		"Contains your birthdate",
		"Avoid using your birthdate or birth year",
	},
	IssueRepeatedChars: {
		"repeatedChars",
		"Contains repeated characters",
		"Avoid repeating the same character multiple times",
	},
	IssueSequentialChars: {
		"sequentialChars",
		"Contains sequential characters",
		"Avoid sequential characters like '123' or 'abc'",
	},
}

// String returns the short tag for the issue.
func (i Issue) String() string {
	if t, ok := issueTable[i]; ok {
		return t.tag
	}
	return "unknown"
}

// Message returns the human-readable issue line.
func (i Issue) Message() string {
	return issueTable[i].message
}

// MessageFor returns the message for a password of the given rune length.
// Only the too-short message carries the length.
func (i Issue) MessageFor(length int) string {
	if i == IssueTooShort {
		return fmt.Sprintf("%s (%d characters)", i.Message(), length)
	}
	return i.Message()
}

// Recommendation returns the advice paired with the issue.
func (i Issue) Recommendation() string {
	return issueTable[i].recommendation
}

func (i Issue) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// sentinel lines used when no check matches
const (
	NoIssues          = "No major issues detected"
	GoodPracticesNote = "Maintain good password practices"
)

// PersonalInfo holds optional hints that must not appear in a password.
// Empty fields are absent.
type PersonalInfo struct {
	Name      string `json:"name,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
}

// Hints returns the non-empty fields, lowercased and trimmed.
func (pi PersonalInfo) Hints() []string {
	var out []string
	for _, v := range []string{pi.Name, pi.Birthdate} {
		if h := normalizeHint(v); h != "" {
			out = append(out, h)
		}
	}
	return out
}

func normalizeHint(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Detector runs the weak-pattern checks against built-in lists.
type Detector struct {
	common []string
	words  []string
}

// NewDetector creates a detector using the embedded lists.
func NewDetector() *Detector {
	return NewDetectorWithLists(commonData, wordsData)
}

// NewDetectorWithLists creates a detector from newline-separated lists.
func NewDetectorWithLists(common, words string) *Detector {
	return &Detector{
		common: loadList(common),
		words:  loadList(words),
	}
}

func loadList(data string) []string {
	var out []string
	for line := range strings.SplitSeq(data, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Detect evaluates every check and returns the findings in declaration
// order. Checks are independent; none suppresses another.
func (d *Detector) Detect(password string, info PersonalInfo) []Issue {
	lower := strings.ToLower(password)
	length := utf8.RuneCountInString(password)

	checks := []struct {
		issue Issue
		hit   bool
	}{
		{IssueEmpty, password == ""},
		{IssueContainsSpace, strings.IndexFunc(password, unicode.IsSpace) >= 0},
		{IssueTooShort, length < MinLength},
		{IssueLowVariety, ProfileOf(password).Classes() < 3},
		{IssueCommonPattern, containsAny(lower, d.common)},
		{IssueDictionaryWord, containsAny(lower, d.words)},
		{IssuePersonalName, containsHint(lower, info.Name)},
		{IssuePersonalBirthdate, containsHint(lower, info.Birthdate)},
		{IssueRepeatedChars, hasRepeat(password, 3)},
		{IssueSequentialChars, hasSequence(lower, 3)},
	}

	var found []Issue
	for _, c := range checks {
		if c.hit {
			found = append(found, c.issue)
		}
	}
	return found
}

func containsAny(s string, list []string) bool {
	for _, w := range list {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func containsHint(lower, hint string) bool {
	h := normalizeHint(hint)
	if h == "" {
		return false
	}
	return strings.Contains(lower, h)
}

// hasRepeat reports whether any rune occurs n or more times in a row.
func hasRepeat(s string, n int) bool {
	run := 0
	var prev rune
	for i, r := range []rune(s) {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

// hasSequence reports whether s holds n or more consecutive letters or
// digits that step by +1 or -1 ("abc", "cba", "123", "321").
func hasSequence(s string, n int) bool {
	rs := []rune(s)
	run := 1
	step := 0
	for i := 1; i < len(rs); i++ {
		d := int(rs[i]) - int(rs[i-1])
		if (d == 1 || d == -1) && sameSeqClass(rs[i-1], rs[i]) {
			if run > 1 && d == step {
				run++
			} else {
				run = 2
			}
			step = d
		} else {
			run = 1
			step = 0
		}
		if run >= n {
			return true
		}
	}
	return false
}

func sameSeqClass(a, b rune) bool {
	switch {
	case a >= 'a' && a <= 'z':
		return b >= 'a' && b <= 'z'
	case a >= '0' && a <= '9':
		return b >= '0' && b <= '9'
	}
	return false
}
