package apierrors

const (
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgInvalidSessionPayload  = "invalidSessionPayload"
	MsgTaskNotFound           = "taskNotFound"
	MsgDuplicateCategory      = "duplicateCategory"
	MsgNoSession              = "noSession"
	MsgFailSaveSnapshot       = "failSaveSnapshot"
	MsgFailExport             = "failExport"
)
