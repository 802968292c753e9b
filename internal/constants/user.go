package constants

const (
	DefaultRole = "NA"

	UnknownUserName  = "UnknownUser"
	UnknownUserEmail = "UnknownEmail"
	DeletedUserImage = "images/deleted_user.png"

	ResetCodeLength  = 8
	ResetCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)
