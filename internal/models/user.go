package models

import "time"

// User представляет снимок профиля пользователя, полученный от бэкенда.
// Все поля принадлежат бэкенду, локально они никогда не вычисляются.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Country   string    `json:"country,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// PointTransaction представляет запись в журнале баллов (только чтение)
type PointTransaction struct {
	ID              int       `json:"id"`
	TransactionType string    `json:"transaction_type"`
	Amount          int       `json:"amount"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// DashboardStats содержит агрегаты из сводки дашборда
type DashboardStats struct {
	PointsBalance  int `json:"points_balance"`
	TotalItems     int `json:"total_items"`
	ActiveSwaps    int `json:"active_swaps"`
	CompletedSwaps int `json:"completed_swaps"`
}

// Dashboard представляет сводку дашборда пользователя
type Dashboard struct {
	User           *User              `json:"user,omitempty"`
	Statistics     DashboardStats     `json:"statistics"`
	RecentActivity []PointTransaction `json:"recent_activity,omitempty"`
}
