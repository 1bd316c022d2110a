package service

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/o064/SWE-Back-End/internal/model"
)

func mcQuestion(points int, correct string, others ...string) model.Question {
	q := model.Question{
		ID:      uuid.New(),
		Text:    "pick the right answer",
		Type:    model.QuestionMultipleChoice,
		Points:  points,
		Options: []model.Option{{Text: correct, IsCorrect: true}},
	}
	for _, o := range others {
		q.Options = append(q.Options, model.Option{Text: o})
	}
	return q
}

func tfQuestion(points int, correct string) model.Question {
	return model.Question{
		ID:            uuid.New(),
		Text:          "true or false",
		Type:          model.QuestionTrueFalse,
		CorrectAnswer: correct,
		Points:        points,
	}
}

func saQuestion(points int) model.Question {
	return model.Question{
		ID:     uuid.New(),
		Text:   "explain briefly",
		Type:   model.QuestionShortAnswer,
		Points: points,
	}
}

func TestGradeAnswerMultipleChoice(t *testing.T) {
	q := mcQuestion(5, "object", "array", "string")

	tests := []struct {
		name       string
		submitted  string
		wantOK     bool
		wantPoints int
	}{
		{"exact match earns full points", "object", true, 5},
		{"wrong option earns zero", "array", false, 0},
		{"no partial credit for near match", "Object", false, 0},
		{"empty answer earns zero", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, points := gradeAnswer(&q, tt.submitted)
			if ok != tt.wantOK || points != tt.wantPoints {
				t.Errorf("gradeAnswer(%q) = (%v, %d), want (%v, %d)",
					tt.submitted, ok, points, tt.wantOK, tt.wantPoints)
			}
		})
	}
}

func TestGradeAnswerMultipleChoiceNoCorrectOption(t *testing.T) {
	// A misconfigured question with no option flagged correct must grade
	// as zero credit, not fault.
	q := model.Question{
		ID:      uuid.New(),
		Type:    model.QuestionMultipleChoice,
		Points:  5,
		Options: []model.Option{{Text: "a"}, {Text: "b"}},
	}

	ok, points := gradeAnswer(&q, "a")
	if ok || points != 0 {
		t.Errorf("gradeAnswer() = (%v, %d), want (false, 0)", ok, points)
	}
}

func TestGradeAnswerTrueFalse(t *testing.T) {
	q := tfQuestion(2, "false")

	if ok, points := gradeAnswer(&q, "false"); !ok || points != 2 {
		t.Errorf("correct answer = (%v, %d), want (true, 2)", ok, points)
	}
	if ok, points := gradeAnswer(&q, "true"); ok || points != 0 {
		t.Errorf("wrong answer = (%v, %d), want (false, 0)", ok, points)
	}
}

func TestGradeAnswerShortAnswerNeverAutoGraded(t *testing.T) {
	q := saQuestion(10)

	for _, submitted := range []string{"", "anything", "a very thorough essay"} {
		if ok, points := gradeAnswer(&q, submitted); ok || points != 0 {
			t.Errorf("gradeAnswer(%q) = (%v, %d), want (false, 0)", submitted, ok, points)
		}
	}
}

func TestGradeAnswersDropsUnmatchedQuestions(t *testing.T) {
	q1 := mcQuestion(2, "object", "array")
	quiz := &model.Quiz{Questions: []model.Question{q1}, TotalPoints: 2}

	answers, total := gradeAnswers(quiz, []model.AnswerInput{
		{QuestionID: q1.ID, StudentAnswer: "object"},
		{QuestionID: uuid.New(), StudentAnswer: "object"}, // unknown question
	})

	if len(answers) != 1 {
		t.Fatalf("got %d recorded answers, want 1 (unmatched answer must be dropped)", len(answers))
	}
	if total != 2 {
		t.Errorf("totalScore = %d, want 2", total)
	}
	if answers[0].QuestionID != q1.ID {
		t.Errorf("recorded answer references %s, want %s", answers[0].QuestionID, q1.ID)
	}
}

func TestGradeAnswersFullScenario(t *testing.T) {
	// Quiz with an MC worth 2 and a TF worth 2; both answered correctly.
	q1 := mcQuestion(2, "object", "array", "number")
	q2 := tfQuestion(2, "false")
	quiz := &model.Quiz{
		Questions:    []model.Question{q1, q2},
		TotalPoints:  4,
		PassingScore: 70,
	}

	answers, total := gradeAnswers(quiz, []model.AnswerInput{
		{QuestionID: q1.ID, StudentAnswer: "object"},
		{QuestionID: q2.ID, StudentAnswer: "false"},
	})

	if total != 4 {
		t.Fatalf("totalScore = %d, want 4", total)
	}
	for i, a := range answers {
		if !a.IsCorrect || a.PointsEarned != 2 {
			t.Errorf("answer %d = (%v, %d), want (true, 2)", i, a.IsCorrect, a.PointsEarned)
		}
	}

	percentage := computePercentage(total, quiz.TotalPoints)
	if percentage != 100 {
		t.Errorf("percentage = %v, want 100", percentage)
	}
	if passed := percentage >= quiz.PassingScore; !passed {
		t.Error("passed = false, want true")
	}
}

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name        string
		score       int
		totalPoints int
		want        float64
	}{
		{"full marks", 4, 4, 100},
		{"half marks", 2, 4, 50},
		{"one third", 1, 3, 100.0 / 3.0},
		{"zero score", 0, 10, 0},
		{"zero total points guards division", 5, 0, 0},
		{"negative total points guards division", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computePercentage(tt.score, tt.totalPoints)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("computePercentage(%d, %d) = %v, want %v", tt.score, tt.totalPoints, got, tt.want)
			}
		})
	}
}

func TestBuildQuestionsValidatesMultipleChoice(t *testing.T) {
	valid := []model.QuestionInput{{
		Text:   "pick one",
		Type:   string(model.QuestionMultipleChoice),
		Points: 2,
		Options: []model.OptionInput{
			{Text: "a", IsCorrect: true},
			{Text: "b"},
		},
	}}
	questions, err := buildQuestions(valid)
	if err != nil {
		t.Fatalf("buildQuestions(valid) error: %v", err)
	}
	if len(questions) != 1 || questions[0].ID == uuid.Nil {
		t.Error("buildQuestions should assign a question ID")
	}

	noCorrect := []model.QuestionInput{{
		Text:    "pick one",
		Type:    string(model.QuestionMultipleChoice),
		Points:  2,
		Options: []model.OptionInput{{Text: "a"}, {Text: "b"}},
	}}
	if _, err := buildQuestions(noCorrect); err != ErrBadQuestion {
		t.Errorf("buildQuestions(no correct option) error = %v, want ErrBadQuestion", err)
	}

	twoCorrect := []model.QuestionInput{{
		Text:   "pick one",
		Type:   string(model.QuestionMultipleChoice),
		Points: 2,
		Options: []model.OptionInput{
			{Text: "a", IsCorrect: true},
			{Text: "b", IsCorrect: true},
		},
	}}
	if _, err := buildQuestions(twoCorrect); err != ErrBadQuestion {
		t.Errorf("buildQuestions(two correct options) error = %v, want ErrBadQuestion", err)
	}
}
