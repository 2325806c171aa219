package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_ALREADY_REGISTERED"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden       ErrCode = "FORBIDDEN"
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Domain ────────────────────────────────────────────────────────
	ErrInvalidYoutubeURL ErrCode = "INVALID_YOUTUBE_URL"
	ErrUnknownCategory   ErrCode = "UNKNOWN_CATEGORY"
	ErrNotStudent        ErrCode = "NOT_A_STUDENT"

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
		return "이메일 또는 비밀번호가 올바르지 않습니다."
	case ErrEmailTaken:
		return "이미 가입된 이메일입니다."
	case ErrSessionInvalidated:
		return "세션이 만료되었습니다. 다시 로그인해 주세요."
	case ErrTokenRequired:
		return "인증 토큰이 필요합니다."
	case ErrTokenInvalid:
		return "인증 토큰이 유효하지 않습니다."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "이 리소스에 접근할 권한이 없습니다."
	case ErrAdminAccessOnly:
		return "관리자 전용 기능입니다."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "입력값을 다시 확인해 주세요."
	case ErrInvalidID:
		return "ID 형식이 올바르지 않습니다."
	case ErrInvalidPayload:
		return "요청 형식이 올바르지 않습니다."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "요청한 데이터를 찾을 수 없습니다."
	case ErrConflict:
		return "이미 존재하는 데이터입니다."

	// ─── Domain ────────────────────────────────────────────────────────
	case ErrInvalidYoutubeURL:
		return "유효한 YouTube 링크가 아닙니다."
	case ErrUnknownCategory:
		return "알 수 없는 게시글 분류입니다."
	case ErrNotStudent:
		return "학생 계정이 아닙니다."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "서버 오류가 발생했습니다."
	default:
		return "알 수 없는 오류가 발생했습니다."
	}
}
