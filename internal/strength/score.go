// Package strength scores passwords with a fixed set of heuristics:
// length, character variety, entropy and weak-pattern findings.
// Analysis is pure; the same input always yields the same Result.
package strength

import (
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// scoring weights
const (
	baseScore = 0

	pointsPerChar   = 2
	maxLengthPoints = 32

	pointsPerClass = 10

	bitsPerPoint     = 3
	maxEntropyPoints = 25

	heavyPenalty    = 20
	tooShortPenalty = 10
	lightPenalty    = 10

	// top zxcvbn score; suggestions must reach it
	maxEstimate = 4
	// zxcvbn matching is superlinear, longer input is truncated
	maxEstimateRunes = 128
)

var penalties = map[Issue]int{
	IssueEmpty:             lightPenalty,
	IssueContainsSpace:     lightPenalty,
	IssueTooShort:          tooShortPenalty,
	IssueLowVariety:        lightPenalty,
	IssueCommonPattern:     heavyPenalty,
	IssueDictionaryWord:    heavyPenalty,
	IssuePersonalName:      heavyPenalty,
	IssuePersonalBirthdate: heavyPenalty,
	IssueRepeatedChars:     lightPenalty,
	IssueSequentialChars:   lightPenalty,
}

// Rating is the qualitative bucket derived from a score.
type Rating int

const (
	VeryWeak Rating = iota
	Weak
	Moderate
	Strong
	Excellent
)

// lower bounds of each rating band; the bands cover [0,100] without gaps
var ratingFloors = []struct {
	floor  int
	rating Rating
}{
	{85, Excellent},
	{60, Strong},
	{40, Moderate},
	{20, Weak},
	{0, VeryWeak},
}

// RatingFor maps a score to its rating. Scores are clamped to [0,100].
func RatingFor(score int) Rating {
	score = clamp(score)
	for _, b := range ratingFloors {
		if score >= b.floor {
			return b.rating
		}
	}
	return VeryWeak
}

func (r Rating) String() string {
	switch r {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case Excellent:
		return "Excellent"
	}
	return "Unknown"
}

func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is the outcome of analyzing one password.
type Result struct {
	Score           int      `json:"score"`
	Rating          Rating   `json:"rating"`
	Entropy         float64  `json:"entropy"`
	MaxEntropy      float64  `json:"max_entropy"`
	Profile         Profile  `json:"profile"`
	Findings        []Issue  `json:"findings"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	// Estimate is zxcvbn's 0-4 score; it does not feed Score.
	Estimate int `json:"estimate"`
}

// Has reports whether the result contains the given finding.
func (r Result) Has(issue Issue) bool {
	for _, f := range r.Findings {
		if f == issue {
			return true
		}
	}
	return false
}

// Scorer combines the heuristics into a Result.
type Scorer struct {
	detector *Detector
}

// NewScorer creates a scorer with the built-in pattern lists.
func NewScorer() *Scorer {
	return &Scorer{detector: NewDetector()}
}

// NewScorerWithDetector creates a scorer around a custom detector.
func NewScorerWithDetector(d *Detector) *Scorer {
	return &Scorer{detector: d}
}

// Analyze scores a password against the optional personal info.
func (s *Scorer) Analyze(password string, info PersonalInfo) Result {
	profile := ProfileOf(password)
	length := utf8.RuneCountInString(password)
	entropy := Entropy(password, profile)
	findings := s.detector.Detect(password, info)

	score := 0
	if password != "" {
		score = baseScore +
			min(length*pointsPerChar, maxLengthPoints) +
			profile.Classes()*pointsPerClass +
			min(int(entropy/bitsPerPoint), maxEntropyPoints)
		for _, f := range findings {
			score -= penalties[f]
		}
	}
	score = clamp(score)

	res := Result{
		Score:      score,
		Rating:     RatingFor(score),
		Entropy:    entropy,
		MaxEntropy: MaxEntropy(length),
		Profile:    profile,
		Findings:   findings,
		Estimate:   estimate(password, info),
	}

	if len(findings) == 0 {
		res.Issues = []string{NoIssues}
		res.Recommendations = []string{GoodPracticesNote}
		return res
	}
	for _, f := range findings {
		res.Issues = append(res.Issues, f.MessageFor(length))
		res.Recommendations = append(res.Recommendations, f.Recommendation())
	}
	return res
}

// Excellent reports whether the password rates Excellent with no findings
// and the top zxcvbn estimate.
func (s *Scorer) Excellent(password string, info PersonalInfo) bool {
	r := s.Analyze(password, info)
	return r.Rating == Excellent && len(r.Findings) == 0 && r.Estimate == maxEstimate
}

func estimate(password string, info PersonalInfo) int {
	if password == "" {
		return 0
	}
	if rs := []rune(password); len(rs) > maxEstimateRunes {
		password = string(rs[:maxEstimateRunes])
	}
	return zxcvbn.PasswordStrength(password, info.Hints()).Score
}

func clamp(score int) int {
	return max(0, min(score, 100))
}
