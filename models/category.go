package models

type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

type Subcategory struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}
