package handler

// todoRequest is the body for create and update. The same four mutable
// fields apply to both, exactly as in the original service.
type todoRequest struct {
	Title       string `json:"title"       validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=1,max=100"`
	Priority    int    `json:"priority"    validate:"required,gte=1,lte=5"`
	Completed   bool   `json:"completed"`
}

// todoResponse is the transport view of a todo. Kept separate from the
// domain type so the JSON contract is not coupled to internal changes.
type todoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
	OwnerID     int64  `json:"owner_id,omitempty"`
}
