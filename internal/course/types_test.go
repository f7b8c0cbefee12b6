package course

import "testing"

func TestParseQuestionType_Normalizes(t *testing.T) {
	cases := map[string]QuestionType{
		"multiple_choice": TypeMultipleChoice,
		"Multiple_Choice": TypeMultipleChoice,
		"TRUE_FALSE":      TypeTrueFalse,
		" sequencing ":    TypeSequencing,
		"Matching":        TypeMatching,
	}
	for raw, want := range cases {
		got, err := ParseQuestionType(raw)
		if err != nil {
			t.Fatalf("ParseQuestionType(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseQuestionType(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseQuestionType_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"essay", "fill_in", ""} {
		if _, err := ParseQuestionType(raw); err == nil {
			t.Fatalf("ParseQuestionType(%q): expected error", raw)
		}
	}
}

func TestDisplayable(t *testing.T) {
	mc := &Question{Type: TypeMultipleChoice, Options: []string{"a", "b"}}
	if !mc.Displayable() {
		t.Fatal("multiple choice with options should be displayable")
	}

	emptyMC := &Question{Type: TypeMultipleChoice}
	if emptyMC.Displayable() {
		t.Fatal("multiple choice without options should not be displayable")
	}

	seq := &Question{Type: TypeSequencing, Metadata: &Metadata{SequenceItems: []string{"x", "y"}}}
	if !seq.Displayable() {
		t.Fatal("sequencing with items should be displayable")
	}

	bareSeq := &Question{Type: TypeSequencing}
	if bareSeq.Displayable() {
		t.Fatal("sequencing without metadata should not be displayable")
	}

	bareMatch := &Question{Type: TypeMatching, Metadata: &Metadata{}}
	if bareMatch.Displayable() {
		t.Fatal("matching without pairs should not be displayable")
	}
}
