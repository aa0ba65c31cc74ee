package triage

import (
	"reflect"
	"testing"
)

func TestCheckSymptoms(t *testing.T) {
	tests := []struct {
		name     string
		symptoms string
		want     []string
	}{
		{
			name:     "fever and cough",
			symptoms: "I have a fever and a cough",
			want:     []string{"Viral or bacterial respiratory infection"},
		},
		{
			name:     "chest pain",
			symptoms: "sudden CHEST PAIN since this morning",
			want:     []string{"Cardiac issue / emergency - seek urgent care"},
		},
		{
			name:     "shortness of breath alone",
			symptoms: "shortness of breath when climbing stairs",
			want:     []string{"Cardiac issue / emergency - seek urgent care"},
		},
		{
			name:     "headache with vomiting",
			symptoms: "bad headache, had to vomit twice",
			want:     []string{"Migraine or raised intracranial pressure"},
		},
		{
			name:     "multiple rules match in order",
			symptoms: "chest pain, fever with cough, headache and vomiting",
			want: []string{
				"Cardiac issue / emergency - seek urgent care",
				"Viral or bacterial respiratory infection",
				"Migraine or raised intracranial pressure",
			},
		},
		{
			name:     "fever without cough is not respiratory",
			symptoms: "just a fever",
			want:     []string{FallbackCondition},
		},
		{
			name:     "no match falls back",
			symptoms: "I feel generally unwell",
			want:     []string{FallbackCondition},
		},
		{
			name:     "empty input falls back",
			symptoms: "",
			want:     []string{FallbackCondition},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, advice := CheckSymptoms(tt.symptoms)
			if !reflect.DeepEqual(conditions, tt.want) {
				t.Errorf("conditions = %v, want %v", conditions, tt.want)
			}
			if advice != Advice {
				t.Errorf("advice = %q, want %q", advice, Advice)
			}
		})
	}
}

func TestIntakeReply(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "fever keyword",
			message: "I think I have a Fever",
			want:    "How long have you had the fever and how high has it gone?",
		},
		{
			name:    "pain keyword",
			message: "my chest hurts with pain",
			want:    "Where is the pain located and how severe is it from 1 to 10?",
		},
		{
			name:    "breath keyword",
			message: "short of breath today",
			want:    "Are you short of breath at rest, or only on exertion?",
		},
		{
			name:    "fever beats pain when both present",
			message: "fever and pain everywhere",
			want:    "How long have you had the fever and how high has it gone?",
		},
		{
			name:    "headache has no keyword",
			message: "I have a headache",
			want:    FallbackPrompt,
		},
		{
			name:    "empty message",
			message: "",
			want:    FallbackPrompt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntakeReply(tt.message); got != tt.want {
				t.Errorf("IntakeReply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
