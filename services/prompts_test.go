package services

import (
	"strings"
	"testing"
)

func TestValidMBTI(t *testing.T) {
	for _, valid := range []string{"ENFP", "istj", "InFj", "ESTP"} {
		if !ValidMBTI(valid) {
			t.Fatalf("%q should be a valid MBTI code", valid)
		}
	}
	for _, invalid := range []string{"", "EN", "ENFPX", "XXXX", "EEFP", "ENFF"} {
		if ValidMBTI(invalid) {
			t.Fatalf("%q should be rejected", invalid)
		}
	}
}

func TestBuildPersonalityPrompt(t *testing.T) {
	prompt := BuildPersonalityPrompt("보리", "enfp", "씩씩한 반말")

	if !strings.Contains(prompt, "보리") {
		t.Fatalf("prompt missing persona name: %q", prompt)
	}
	if !strings.Contains(prompt, "ENFP") {
		t.Fatalf("prompt should carry the uppercased MBTI code")
	}
	if !strings.Contains(prompt, "씩씩한 반말") {
		t.Fatalf("prompt missing tone")
	}
	// One trait line per axis letter.
	for _, trait := range []string{mbtiTraits['E'], mbtiTraits['N'], mbtiTraits['F'], mbtiTraits['P']} {
		if !strings.Contains(prompt, trait) {
			t.Fatalf("prompt missing trait %q", trait)
		}
	}
}
