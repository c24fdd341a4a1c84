package domain

type Notification struct {
	ID        string           `json:"id" validate:"required"`
	UserID    string           `json:"userId" validate:"required"`
	Title     string           `json:"title" validate:"required"`
	Message   string           `json:"message" validate:"required"`
	Type      NotificationType `json:"type" validate:"enum"`
	IsRead    bool             `json:"isRead"`
	Data      map[string]any   `json:"data,omitempty"` // producer defined, never inspected
	CreatedAt string           `json:"createdAt" validate:"utciso8601"`
}

func (n Notification) Validate() error {
	return checkStruct(n)
}

func (Notification) wireFields() []field {
	return []field{
		req("id"), req("userId"), req("title"), req("message"), req("type"),
		req("isRead"), opt("data"), req("createdAt"),
	}
}

func (n *Notification) MarkRead() {
	n.IsRead = true
}
