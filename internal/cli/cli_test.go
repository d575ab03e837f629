package cli

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--json", "--name", "x"}, "--json", true},
		{"absent", []string{"--name", "x"}, "--json", false},
		{"empty", nil, "--json", false},
		{"case insensitive", []string{"--JSON"}, "--json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want string
	}{
		{"separate", []string{"--name", "John"}, "--name", "John"},
		{"equals", []string{"--birthdate=1995"}, "--birthdate", "1995"},
		{"missing value", []string{"--name"}, "--name", ""},
		{"absent", []string{"--json"}, "--name", ""},
		{"case insensitive", []string{"--NAME", "Ann"}, "--name", "Ann"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flagValue(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("flagValue(%v, %s) = %q, want %q", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"secret\n", "secret"},
		{"secret\r\n", "secret"},
		{"no newline", "no newline"},
		{"", ""},
		{"first\nsecond\n", "first"},
	}
	for _, tt := range tests {
		got, err := readLine(strings.NewReader(tt.in))
		if err != nil {
			t.Fatalf("readLine(%q): %v", tt.in, err)
		}
		if string(got) != tt.want {
			t.Errorf("readLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckText(t *testing.T) {
	var out bytes.Buffer
	if err := Check(&out, []byte("password123"), nil); err != nil {
		t.Fatalf("Check: %v", err)
	}
	for _, w := range []string{"Strength: Very Weak (Score: 10/100)", "Suggested Excellent Password:"} {
		if !strings.Contains(out.String(), w) {
			t.Errorf("output missing %q\n%s", w, out.String())
		}
	}
}

func TestCheckJSONWithPersonalInfo(t *testing.T) {
	var out bytes.Buffer
	args := []string{"--json", "--name", "John", "--birthdate=1995"}
	if err := Check(&out, []byte("john1995"), args); err != nil {
		t.Fatalf("Check: %v", err)
	}

	var got struct {
		Result struct {
			Score    int      `json:"score"`
			Rating   string   `json:"rating"`
			Findings []string `json:"findings"`
		} `json:"result"`
		Suggestion string `json:"suggestion"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}

	if got.Result.Rating != "Very Weak" {
		t.Errorf("rating = %q", got.Result.Rating)
	}
	found := strings.Join(got.Result.Findings, ",")
	for _, tag := range []string{"personalName", "personalBirthdate"} {
		if !strings.Contains(found, tag) {
			t.Errorf("findings %v missing %s", got.Result.Findings, tag)
		}
	}
	if got.Suggestion == "" {
		t.Error("expected a suggestion")
	}
}

func TestGenerate(t *testing.T) {
	var seed [32]byte
	var out bytes.Buffer
	if err := Generate(&out, rand.NewChaCha8(seed), nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	pw := strings.TrimSuffix(out.String(), "\n")
	if len(pw) != 16 {
		t.Errorf("generated %q, want 16 chars", pw)
	}
}

func TestGenerateJSON(t *testing.T) {
	var seed [32]byte
	seed[0] = 5
	var out bytes.Buffer
	if err := Generate(&out, rand.NewChaCha8(seed), []string{"--json"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var got struct {
		Password string `json:"password"`
		Result   struct {
			Rating string `json:"rating"`
		} `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Result.Rating != "Excellent" {
		t.Errorf("rating = %q, want Excellent", got.Result.Rating)
	}
}
