package service

import (
	"github.com/google/uuid"

	"github.com/o064/SWE-Back-End/internal/model"
)

// gradeAnswers performs one linear pass over the submitted answers,
// evaluating each against the quiz's embedded question list.
//
// Answers referencing a question ID not present in the quiz are silently
// dropped: they are neither recorded nor counted. This is deliberate
// policy, not an error path.
func gradeAnswers(quiz *model.Quiz, inputs []model.AnswerInput) ([]model.Answer, int) {
	graded := make([]model.Answer, 0, len(inputs))
	totalScore := 0

	for _, input := range inputs {
		question := findQuestion(quiz, input.QuestionID)
		if question == nil {
			continue
		}

		isCorrect, pointsEarned := gradeAnswer(question, input.StudentAnswer)
		totalScore += pointsEarned
		graded = append(graded, model.Answer{
			QuestionID:    input.QuestionID,
			StudentAnswer: input.StudentAnswer,
			IsCorrect:     isCorrect,
			PointsEarned:  pointsEarned,
		})
	}
	return graded, totalScore
}

// gradeAnswer evaluates a single answer. Full points or zero; no partial
// credit for any question type.
func gradeAnswer(q *model.Question, submitted string) (isCorrect bool, pointsEarned int) {
	switch q.Type {
	case model.QuestionMultipleChoice:
		// A question with no option flagged correct grades as zero
		// credit rather than faulting.
		correct := correctOption(q)
		if correct == nil {
			return false, 0
		}
		if submitted == correct.Text {
			return true, q.Points
		}
		return false, 0

	case model.QuestionTrueFalse:
		if submitted == q.CorrectAnswer {
			return true, q.Points
		}
		return false, 0

	case model.QuestionShortAnswer:
		// Never auto-graded; recorded as incorrect with zero points
		// pending manual review.
		return false, 0
	}
	return false, 0
}

// computePercentage guards the division: a quiz with non-positive total
// points yields 0 instead of a non-numeric percentage.
func computePercentage(totalScore, totalPoints int) float64 {
	if totalPoints <= 0 {
		return 0
	}
	return float64(totalScore) / float64(totalPoints) * 100
}

func findQuestion(quiz *model.Quiz, id uuid.UUID) *model.Question {
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == id {
			return &quiz.Questions[i]
		}
	}
	return nil
}

func correctOption(q *model.Question) *model.Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}
