package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestStudentViewStripsCorrectnessData(t *testing.T) {
	quiz := &Quiz{
		ID:    uuid.New(),
		Title: "Checkpoint",
		Questions: []Question{
			{
				ID:   uuid.New(),
				Text: "pick one",
				Type: QuestionMultipleChoice,
				Options: []Option{
					{Text: "a", IsCorrect: true},
					{Text: "b"},
				},
				Points: 2,
			},
			{
				ID:            uuid.New(),
				Text:          "true or false",
				Type:          QuestionTrueFalse,
				CorrectAnswer: "false",
				Points:        2,
			},
		},
	}

	view := quiz.StudentView()

	if len(view.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(view.Questions))
	}
	if got := view.Questions[0].Options; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("options = %v, want flattened [a b]", got)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, leaked := range []string{"is_correct", "correct_answer"} {
		if strings.Contains(string(raw), leaked) {
			t.Errorf("serialized view leaks %q", leaked)
		}
	}
}

func TestStudentViewKeepsQuestionIdentity(t *testing.T) {
	q := Question{ID: uuid.New(), Text: "q", Type: QuestionShortAnswer, Points: 5}
	quiz := &Quiz{ID: uuid.New(), Questions: []Question{q}}

	view := quiz.StudentView()
	if view.Questions[0].ID != q.ID {
		t.Errorf("question ID changed: %s != %s", view.Questions[0].ID, q.ID)
	}
	if view.Questions[0].Points != 5 {
		t.Errorf("points = %d, want 5", view.Questions[0].Points)
	}
}
