package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/o064/SWE-Back-End/internal/authz"
	"github.com/o064/SWE-Back-End/internal/config"
	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/repository"
)

// Quiz domain errors.
var (
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrQuizHidden        = errors.New("quiz is not yet published")
	ErrQuizNotPublished  = errors.New("quiz is not published")
	ErrQuizNoQuestions   = errors.New("quiz must have at least one question")
	ErrAttemptsExhausted = errors.New("quiz attempts exhausted")
	ErrBadQuestion       = errors.New("multiple-choice question must have exactly one correct option")
)

// QuizService handles quiz business logic: CRUD, publication, the grading
// pipeline and the Redis payload cache for published quizzes.
type QuizService struct {
	quizzes     *repository.QuizRepository
	submissions *repository.QuizSubmissionRepository
	courses     *repository.CourseRepository
	rdb         *redis.Client
	cfg         *config.Config
	log         zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizzes *repository.QuizRepository,
	submissions *repository.QuizSubmissionRepository,
	courses *repository.CourseRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizzes:     quizzes,
		submissions: submissions,
		courses:     courses,
		rdb:         rdb,
		cfg:         cfg,
		log:         log.With().Str("component", "quiz_service").Logger(),
	}
}

func (s *QuizService) getQuiz(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	return quiz, nil
}

// buildQuestions materializes question inputs, assigning embedded IDs and
// validating the choice configuration before anything is written.
func buildQuestions(inputs []model.QuestionInput) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(inputs))
	for _, in := range inputs {
		q := model.Question{
			ID:            uuid.New(),
			Text:          in.Text,
			Type:          model.QuestionType(in.Type),
			CorrectAnswer: in.CorrectAnswer,
			Points:        in.Points,
			Explanation:   in.Explanation,
		}
		for _, opt := range in.Options {
			q.Options = append(q.Options, model.Option{Text: opt.Text, IsCorrect: opt.IsCorrect})
		}
		if q.Type == model.QuestionMultipleChoice {
			correct := 0
			for _, opt := range q.Options {
				if opt.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				return nil, ErrBadQuestion
			}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Create inserts a new, unpublished quiz into a course the caller owns.
func (s *QuizService) Create(ctx context.Context, caller *model.User, req *model.CreateQuizRequest) (*model.Quiz, error) {
	course, err := getCourse(ctx, s.courses, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}

	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:        req.Title,
		Description:  req.Description,
		CourseID:     req.CourseID,
		Questions:    questions,
		DueDate:      req.DueDate,
		TotalPoints:  req.TotalPoints,
		TimeLimit:    60,
		PassingScore: 60,
		Attempts:     1,
		IsPublished:  false,
	}
	if req.TimeLimit != nil {
		quiz.TimeLimit = *req.TimeLimit
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.Attempts != nil {
		quiz.Attempts = *req.Attempts
	}

	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}
	s.log.Info().Str("quiz_id", quiz.ID.String()).Msg("Quiz created")
	return quiz, nil
}

// ListPublishedByCourse retrieves a course's published quizzes without
// their question documents, newest first.
func (s *QuizService) ListPublishedByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Quiz, error) {
	quizzes, err := s.quizzes.ListPublishedByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []model.Quiz{}
	}
	return quizzes, nil
}

// GetForCaller retrieves a quiz for the caller. The owning instructor gets
// the full document, answer key included; everyone else gets the student
// view with correctness data stripped, served through the Redis cache when
// published. Unpublished quizzes are visible to the owner only.
func (s *QuizService) GetForCaller(ctx context.Context, caller *model.User, id uuid.UUID) (interface{}, error) {
	// Fast lane: students read published payloads straight from Redis.
	if caller.Role == model.RoleStudent {
		if view := s.cachedView(ctx, id); view != nil {
			return view, nil
		}
	}

	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	course, err := getCourse(ctx, s.courses, quiz.CourseID)
	if err != nil {
		return nil, err
	}

	if authz.Allows(caller, course, authz.Owner) {
		return quiz, nil
	}
	if !quiz.IsPublished {
		return nil, ErrQuizHidden
	}

	view := quiz.StudentView()
	s.warmCache(ctx, quiz)
	return view, nil
}

// Update applies the non-empty fields of req to a quiz the caller owns and
// drops any cached payload.
func (s *QuizService) Update(ctx context.Context, caller *model.User, id uuid.UUID, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	course, err := getCourse(ctx, s.courses, quiz.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}

	if req.Title != "" {
		quiz.Title = req.Title
	}
	if req.Description != "" {
		quiz.Description = req.Description
	}
	if req.Questions != nil {
		questions, err := buildQuestions(req.Questions)
		if err != nil {
			return nil, err
		}
		quiz.Questions = questions
	}
	if req.DueDate != nil {
		quiz.DueDate = *req.DueDate
	}
	if req.TotalPoints != nil {
		quiz.TotalPoints = *req.TotalPoints
	}
	if req.TimeLimit != nil {
		quiz.TimeLimit = *req.TimeLimit
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.Attempts != nil {
		quiz.Attempts = *req.Attempts
	}

	if err := s.quizzes.Update(ctx, quiz); err != nil {
		return nil, fmt.Errorf("update quiz: %w", err)
	}
	s.invalidateCache(ctx, id)
	return quiz, nil
}

// Delete removes a quiz the caller owns and drops any cached payload.
func (s *QuizService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return err
	}
	course, err := getCourse(ctx, s.courses, quiz.CourseID)
	if err != nil {
		return err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return ErrNotOwner
	}

	if err := s.quizzes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	s.invalidateCache(ctx, id)
	s.log.Info().Str("quiz_id", id.String()).Msg("Quiz deleted")
	return nil
}

// Publish makes a quiz visible and submittable to students. Requires at
// least one question; irreversible. Warms the payload cache.
func (s *QuizService) Publish(ctx context.Context, caller *model.User, id uuid.UUID) (*model.Quiz, error) {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	course, err := getCourse(ctx, s.courses, quiz.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}
	if len(quiz.Questions) == 0 {
		return nil, ErrQuizNoQuestions
	}

	if err := s.quizzes.SetPublished(ctx, id, true); err != nil {
		return nil, fmt.Errorf("publish quiz: %w", err)
	}
	quiz.IsPublished = true
	s.warmCache(ctx, quiz)
	s.log.Info().Str("quiz_id", id.String()).Msg("Quiz published")
	return quiz, nil
}

// Submit runs the grading pipeline for one attempt: precondition checks,
// one linear grading pass, aggregate computation and the persisted record.
//
// The attempt-count check and the insert below are two independent store
// operations; a concurrent pair of submits can slip one attempt past the
// limit. Known race, accepted by design.
func (s *QuizService) Submit(ctx context.Context, caller *model.User, id uuid.UUID, req *model.SubmitQuizRequest) (*model.QuizSubmission, error) {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quiz.IsPublished {
		return nil, ErrQuizNotPublished
	}

	attempts, err := s.submissions.CountByQuizAndStudent(ctx, id, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}
	if attempts >= quiz.Attempts {
		return nil, ErrAttemptsExhausted
	}

	answers, totalScore := gradeAnswers(quiz, req.Answers)
	percentage := computePercentage(totalScore, quiz.TotalPoints)

	submission := &model.QuizSubmission{
		QuizID:        id,
		StudentID:     caller.ID,
		Answers:       answers,
		TotalScore:    totalScore,
		Percentage:    percentage,
		Passed:        percentage >= quiz.PassingScore,
		AttemptNumber: attempts + 1,
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.log.Info().
		Str("quiz_id", id.String()).
		Str("student_id", caller.ID.String()).
		Int("attempt", submission.AttemptNumber).
		Int("score", totalScore).
		Bool("passed", submission.Passed).
		Msg("Quiz submitted")
	return submission, nil
}

// ListSubmissions retrieves every attempt for a quiz the caller owns.
func (s *QuizService) ListSubmissions(ctx context.Context, caller *model.User, id uuid.UUID) ([]model.QuizSubmission, error) {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	course, err := getCourse(ctx, s.courses, quiz.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}

	submissions, err := s.submissions.ListByQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []model.QuizSubmission{}
	}
	return submissions, nil
}

// MyResults retrieves the caller's own attempts for a quiz.
func (s *QuizService) MyResults(ctx context.Context, caller *model.User, id uuid.UUID) ([]model.QuizSubmission, error) {
	submissions, err := s.submissions.ListByQuizAndStudent(ctx, id, caller.ID)
	if err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []model.QuizSubmission{}
	}
	return submissions, nil
}

// PrewarmCaches loads every published quiz payload into Redis. Called on
// application startup before traffic is accepted.
func (s *QuizService) PrewarmCaches(ctx context.Context) error {
	quizzes, err := s.quizzes.ListPublished(ctx)
	if err != nil {
		return fmt.Errorf("list published: %w", err)
	}
	for i := range quizzes {
		s.warmCache(ctx, &quizzes[i])
	}
	s.log.Info().Int("count", len(quizzes)).Msg("Quiz payload caches prewarmed")
	return nil
}

// cachedView returns the cached student payload, or nil on miss or any
// cache error. The store remains authoritative.
func (s *QuizService) cachedView(ctx context.Context, id uuid.UUID) *model.StudentQuizView {
	raw, err := s.rdb.Get(ctx, config.CacheKey.QuizPayloadKey(id.String())).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("Quiz cache read failed")
		}
		return nil
	}
	view := &model.StudentQuizView{}
	if err := json.Unmarshal(raw, view); err != nil {
		s.log.Warn().Err(err).Msg("Quiz cache payload corrupt")
		return nil
	}
	return view
}

func (s *QuizService) warmCache(ctx context.Context, quiz *model.Quiz) {
	if !quiz.IsPublished {
		return
	}
	raw, err := json.Marshal(quiz.StudentView())
	if err != nil {
		s.log.Warn().Err(err).Msg("Quiz cache marshal failed")
		return
	}
	if err := s.rdb.Set(ctx, config.CacheKey.QuizPayloadKey(quiz.ID.String()), raw, s.cfg.QuizCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Quiz cache write failed")
	}
}

func (s *QuizService) invalidateCache(ctx context.Context, id uuid.UUID) {
	if err := s.rdb.Del(ctx, config.CacheKey.QuizPayloadKey(id.String())).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Quiz cache invalidation failed")
	}
}
