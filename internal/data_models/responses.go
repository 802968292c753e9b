package dto

type StatusResponse struct {
	Message string `json:"message"`
}

func Success() StatusResponse {
	return StatusResponse{Message: "Success"}
}

type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Image   string `json:"image"`
}

type TaskResponse struct {
	TaskID      uint          `json:"taskId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Due         string        `json:"due"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	Type        string        `json:"type"`
	Assignees   []UserSummary `json:"assignees"`
	Creator     UserSummary   `json:"creator"`
}

type TaskDetailResponse struct {
	TaskResponse
	SentDate    string               `json:"sentDate"`
	Comments    []CommentResponse    `json:"comments"`
	Subtasks    []SubtaskResponse    `json:"subtasks"`
	Checklists  []ChecklistResponse  `json:"checklists"`
	Attachments []AttachmentResponse `json:"attachments"`
}

type SubtaskResponse struct {
	SubtaskID   uint          `json:"subtaskId"`
	TaskID      uint          `json:"taskId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Due         string        `json:"due"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	Type        string        `json:"type"`
	Assignees   []UserSummary `json:"assignees"`
	Creator     UserSummary   `json:"creator"`
}

type ChecklistResponse struct {
	ChecklistID uint          `json:"checklistId"`
	TaskID      uint          `json:"taskId"`
	User        UserSummary   `json:"user"`
	Description string        `json:"description"`
	IsChecked   bool          `json:"isChecked"`
	Assignees   []UserSummary `json:"assignees"`
	SentDate    string        `json:"sentDate"`
}

type CommentResponse struct {
	CommentID    uint        `json:"commentId"`
	TaskID       uint        `json:"taskId"`
	Description  string      `json:"description"`
	ReplyIDs     []uint      `json:"replyId"`
	MentionNames []string    `json:"mentionsName"`
	User         UserSummary `json:"user"`
	SentDate     string      `json:"sentDate"`
	LikeIDs      []uint      `json:"likesId"`
}

type AttachmentResponse struct {
	AttachmentID   uint        `json:"attachmentId"`
	TaskID         uint        `json:"taskId"`
	User           UserSummary `json:"user"`
	AttachmentPath string      `json:"attachmentPath"`
	FileName       string      `json:"fileName"`
	SentDate       string      `json:"sentDate"`
}

// MessageSummary is a list entry; Other is the counterpart of the viewer.
type MessageSummary struct {
	MessageID uint        `json:"messageId"`
	SentDate  string      `json:"sentDate"`
	Other     UserSummary `json:"other"`
	Title     string      `json:"title"`
}

type MessageDetailResponse struct {
	MessageID       uint            `json:"messageId"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	SentDate        string          `json:"sentDate"`
	Sender          UserSummary     `json:"sender"`
	Receiver        UserSummary     `json:"receiver"`
	AttachmentPaths []string        `json:"attachmentPaths"`
	FileNames       []string        `json:"fileNames"`
	Replies         []ReplyResponse `json:"replies"`
}

type ReplyResponse struct {
	MessageReplyID  uint        `json:"messageReplyId"`
	MessageID       uint        `json:"messageId"`
	SentDate        string      `json:"sentDate"`
	Description     string      `json:"description"`
	FromID          uint        `json:"fromId"`
	From            UserSummary `json:"from"`
	AttachmentPaths []string    `json:"attachmentPaths"`
	FileNames       []string    `json:"fileNames"`
}
