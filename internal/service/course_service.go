package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/o064/SWE-Back-End/internal/authz"
	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/repository"
)

// Course domain errors. ErrNotOwner is shared by every service whose
// ownership checks resolve through the parent course.
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrNotOwner        = errors.New("caller is not the owner of this resource")
	ErrRoleNotAllowed  = errors.New("role not allowed to view courses")
	ErrAlreadyEnrolled = errors.New("already enrolled")
)

// CourseService handles course business logic.
type CourseService struct {
	courses     *repository.CourseRepository
	lectures    *repository.LectureRepository
	assignments *repository.AssignmentRepository
	log         zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(
	courses *repository.CourseRepository,
	lectures *repository.LectureRepository,
	assignments *repository.AssignmentRepository,
	log zerolog.Logger,
) *CourseService {
	return &CourseService{
		courses:     courses,
		lectures:    lectures,
		assignments: assignments,
		log:         log.With().Str("component", "course_service").Logger(),
	}
}

// getCourse loads a course, translating a missing row into the domain error.
func getCourse(ctx context.Context, courses *repository.CourseRepository, id uuid.UUID) (*model.Course, error) {
	course, err := courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// Create inserts a new course owned by the caller.
func (s *CourseService) Create(ctx context.Context, caller *model.User, req *model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: caller.ID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	course.Instructor = &model.UserSummary{ID: caller.ID, Name: caller.Name, Email: caller.Email}
	s.log.Info().Str("course_id", course.ID.String()).Msg("Course created")
	return course, nil
}

// List retrieves all courses with instructor summaries.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Get retrieves a course with its roster, lectures and assignments.
func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	course, err := getCourse(ctx, s.courses, id)
	if err != nil {
		return nil, err
	}

	if course.Students, err = s.courses.ListStudents(ctx, id); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if course.Lectures, err = s.lectures.ListByCourse(ctx, id); err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}
	if course.Assignments, err = s.assignments.ListByCourse(ctx, id); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return course, nil
}

// MyCourses retrieves the courses relevant to the caller: created courses
// for instructors, enrolled courses for students.
func (s *CourseService) MyCourses(ctx context.Context, caller *model.User) ([]model.Course, error) {
	var (
		courses []model.Course
		err     error
	)
	switch caller.Role {
	case model.RoleInstructor:
		courses, err = s.courses.ListByInstructor(ctx, caller.ID)
	case model.RoleStudent:
		courses, err = s.courses.ListByStudent(ctx, caller.ID)
	default:
		return nil, ErrRoleNotAllowed
	}
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Update applies the non-empty fields of req to a course the caller owns.
func (s *CourseService) Update(ctx context.Context, caller *model.User, id uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error) {
	course, err := getCourse(ctx, s.courses, id)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.StartDate != nil {
		course.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		course.EndDate = *req.EndDate
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return course, nil
}

// Delete removes a course the caller owns.
func (s *CourseService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	course, err := getCourse(ctx, s.courses, id)
	if err != nil {
		return err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return ErrNotOwner
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	s.log.Info().Str("course_id", id.String()).Msg("Course deleted")
	return nil
}

// Enroll appends the caller to the course roster. Membership is checked
// before the append.
func (s *CourseService) Enroll(ctx context.Context, caller *model.User, id uuid.UUID) (*model.Course, error) {
	course, err := getCourse(ctx, s.courses, id)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.courses.IsEnrolled(ctx, id, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if enrolled {
		return nil, ErrAlreadyEnrolled
	}

	if err := s.courses.Enroll(ctx, id, caller.ID); err != nil {
		return nil, fmt.Errorf("enroll: %w", err)
	}
	return course, nil
}
