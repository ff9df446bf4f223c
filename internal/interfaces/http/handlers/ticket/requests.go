package ticket

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Description string `json:"description" binding:"required,notblank"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

// UpdateTicketRequest carries optional fields. Status and assigned_to_id are
// honoured for staff only.
type UpdateTicketRequest struct {
	Title        *string `json:"title" binding:"omitempty,notblank,max=200"`
	Description  *string `json:"description" binding:"omitempty,notblank"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status       *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	AssignedToID *uint   `json:"assigned_to_id" binding:"omitempty,min=1"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved closed"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required,min=1"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,notblank,max=5000"`
}

type ListTicketsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Search   string `form:"search" binding:"omitempty,max=200"`
}
