// Package models defines the marketplace entities managed from the admin
// console. All records are server-owned; the client keeps only the most
// recently fetched snapshot of each collection in memory.
package models

// Market is a vendor storefront. The password is displayed and edited in
// plaintext by the operator; that is how the admin tool works, not an
// oversight of this client.
type Market struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	NameRu        string  `json:"name_ru"`
	Phone         string  `json:"phone"`
	Password      string  `json:"password"`
	DeliveryPrice float64 `json:"delivery_price"`
	Location      string  `json:"location"`
	LocationRu    string  `json:"location_ru"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	IsVIP         bool    `json:"isVIP"`
}

// Category is a product category.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	NameRu       string `json:"name_ru"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Banner is a promotional banner.
type Banner struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// UserMessage is an inbound message from an end user. Read-only, deletable.
type UserMessage struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// MarketMessage is an inbound message from a market. Read-only, deletable.
type MarketMessage struct {
	ID       int    `json:"id"`
	MarketID int    `json:"market_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// User is an end-user account. The only field the console may change is
// Verified.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}
