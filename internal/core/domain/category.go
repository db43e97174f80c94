package domain

type Category struct {
	ID          int64  `json:"category_id"`
	Name        string `json:"category_name"`
	Description string `json:"description,omitempty"`
}
