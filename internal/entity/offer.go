package entity

// ServiceOffer is a static catalog entry pitched to leads.
type ServiceOffer struct {
	ID          ServiceID `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Color       string    `json:"color"`
}
