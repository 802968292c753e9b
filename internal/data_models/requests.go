package dto

type SignupRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	ConfirmPassword   string `json:"confirmPassword"`
	NotificationToken string `json:"notificationToken"`
}

type LoginRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	NotificationToken string `json:"notificationToken"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Code            string `json:"code"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ChangeNameRequest struct {
	Name string `json:"name"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type NotificationTokenRequest struct {
	Token string `json:"token"`
}

// TaskRequestData is shared by task and subtask creation.
type TaskRequestData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Type        string `json:"type"`
	Due         string `json:"due"`
	Assignees   []uint `json:"assignee"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type AssigneesRequest struct {
	Assignees []uint `json:"assignee"`
}

type DueRequest struct {
	Due string `json:"due"`
}

type PriorityRequest struct {
	Priority string `json:"priority"`
}

type TypeRequest struct {
	Type string `json:"type"`
}

type TitleRequest struct {
	Title string `json:"title"`
}

type DescriptionRequest struct {
	Description string `json:"description"`
}

type CreateChecklistRequest struct {
	Description string `json:"description"`
	Assignees   []uint `json:"assignee"`
}

type ToggleChecklistRequest struct {
	Check *bool `json:"check"`
}

type CreateCommentRequest struct {
	Description string `json:"description"`
	ReplyIDs    []uint `json:"replyId"`
	MentionIDs  []uint `json:"mentionsId"`
}

// MessageBody travels as the JSON "messageBody" field of a multipart form.
type MessageBody struct {
	ReceiverID  uint   `json:"receiverId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReplyBody travels as the JSON "replyBody" field of a multipart form.
type ReplyBody struct {
	Description string `json:"description"`
}
