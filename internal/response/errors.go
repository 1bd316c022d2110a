package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_TAKEN"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrUserGone           ErrCode = "USER_GONE"
	ErrPasswordChanged    ErrCode = "PASSWORD_CHANGED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden     ErrCode = "FORBIDDEN"
	ErrNotOwner      ErrCode = "NOT_OWNER"
	ErrRoleForbidden ErrCode = "ROLE_FORBIDDEN"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrUserNotFound       ErrCode = "USER_NOT_FOUND"
	ErrCourseNotFound     ErrCode = "COURSE_NOT_FOUND"
	ErrLectureNotFound    ErrCode = "LECTURE_NOT_FOUND"
	ErrAssignmentNotFound ErrCode = "ASSIGNMENT_NOT_FOUND"
	ErrSubmissionNotFound ErrCode = "SUBMISSION_NOT_FOUND"
	ErrQuizNotFound       ErrCode = "QUIZ_NOT_FOUND"
	ErrDiscussionNotFound ErrCode = "DISCUSSION_NOT_FOUND"

	// ─── Domain state ──────────────────────────────────────────────────
	ErrAlreadyEnrolled   ErrCode = "ALREADY_ENROLLED"
	ErrAlreadySubmitted  ErrCode = "ALREADY_SUBMITTED"
	ErrQuizNotPublished  ErrCode = "QUIZ_NOT_PUBLISHED"
	ErrQuizNoQuestions   ErrCode = "QUIZ_NO_QUESTIONS"
	ErrAttemptsExhausted ErrCode = "ATTEMPTS_EXHAUSTED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Password or email is not correct."
	case ErrEmailTaken:
		return "An account with this email already exists."
	case ErrTokenRequired:
		return "You are not logged in. Please log in to get access."
	case ErrTokenInvalid:
		return "Invalid or expired authentication token."
	case ErrUserGone:
		return "The user belonging to this token no longer exists."
	case ErrPasswordChanged:
		return "The password was changed after this token was issued. Please log in again."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to perform this action."
	case ErrNotOwner:
		return "Not authorized."
	case ErrRoleForbidden:
		return "Your role is not allowed to perform this action."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid identifier format."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrUserNotFound:
		return "User not found."
	case ErrCourseNotFound:
		return "Course not found."
	case ErrLectureNotFound:
		return "Lecture not found."
	case ErrAssignmentNotFound:
		return "Assignment not found."
	case ErrSubmissionNotFound:
		return "Submission not found."
	case ErrQuizNotFound:
		return "Quiz not found."
	case ErrDiscussionNotFound:
		return "Discussion not found."

	// ─── Domain state ──────────────────────────────────────────────────
	case ErrAlreadyEnrolled:
		return "Already enrolled."
	case ErrAlreadySubmitted:
		return "Already submitted."
	case ErrQuizNotPublished:
		return "Quiz is not published."
	case ErrQuizNoQuestions:
		return "Quiz must have at least one question."
	case ErrAttemptsExhausted:
		return "You have exhausted your quiz attempts."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
