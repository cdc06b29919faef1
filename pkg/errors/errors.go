package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 打卡条目相关错误。
var (
	MoodInvalid   = Definition{Code: "MOOD_INVALID", Message: "Mood invalid"}
	EntryNotFound = Definition{Code: "ENTRY_NOT_FOUND", Message: "No entry for today"}
)

// 提醒模块错误。
var (
	ReminderTimeInvalid = Definition{Code: "REMINDER_TIME_INVALID", Message: "Reminder time must be HH:MM"}
	ReminderNotDue      = Definition{Code: "REMINDER_NOT_DUE", Message: "No reminder is currently due"}
)

// 存储层错误。
var (
	StorageFailure = Definition{Code: "STORAGE_FAILURE", Message: "Storage operation failed"}
)

// 限流错误。
var (
	InsightRateLimited = Definition{Code: "INSIGHT_RATE_LIMITED", Message: "Insight requests rate limited"}
)

// 兜底错误。
var (
	InternalServerError = Definition{Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error, please retry later"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	MoodInvalid.Code:         MoodInvalid,
	EntryNotFound.Code:       EntryNotFound,
	ReminderTimeInvalid.Code: ReminderTimeInvalid,
	ReminderNotDue.Code:      ReminderNotDue,
	StorageFailure.Code:      StorageFailure,
	InsightRateLimited.Code:  InsightRateLimited,
	InternalServerError.Code: InternalServerError,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
