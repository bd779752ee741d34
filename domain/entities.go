package domain

import "time"

// RoleOrganizer is the role assigned to users created through the
// organizer-creation flow.
const RoleOrganizer = "Organizador"

// User represents an identity record in the portal
type User struct {
	ID           uint
	Name         string
	Email        string
	Phone        string
	Role         string
	Active       bool
	PasswordHash string `gorm:"column:password"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Organizer extends a User with portal-specific profile fields.
// Shifts and WorkDays are stored comma-joined.
type Organizer struct {
	UserID     uint
	Department string
	Position   string
	Bio        string
	Shifts     string
	WorkDays   string
	User       *User
}

// Category groups activities
type Category struct {
	ID     uint
	Name   string
	Active bool
}

// Activity is a scheduled portal event. Date is YYYY-MM-DD,
// StartTime/EndTime are HH:MM.
type Activity struct {
	ID          uint
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Capacity    int
	CategoryID  uint
	OrganizerID uint
	Active      bool
}

// NamedRef is the {id, name} projection embedded in public views
type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ActivityPublicView is the projection served to unauthenticated
// clients: no Active flag, category and organizer reduced to refs.
type ActivityPublicView struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Location  string   `json:"location"`
	Capacity  int      `json:"capacity"`
	Category  NamedRef `json:"category"`
	Organizer NamedRef `json:"organizer"`
}

// ActivityFilter holds the optional search criteria; filters combine
// with AND and only active activities are considered.
type ActivityFilter struct {
	Title       string
	CategoryID  *uint
	OrganizerID *uint
	Location    string
	Date        string
}

// OrganizerProfile is the user-joined organizer projection
type OrganizerProfile struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Active     bool   `json:"active"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Bio        string `json:"bio"`
	Shifts     string `json:"shifts"`
	WorkDays   string `json:"workDays"`
}

// OrganizerFilter holds organizer search criteria
type OrganizerFilter struct {
	Name       string
	Email      string
	Department string
	Position   string
	Shift      string
}

// OrganizerCreate carries the fields accepted when creating an
// organizer together with its backing user record.
type OrganizerCreate struct {
	Name       string
	Email      string
	Phone      string
	Department string
	Position   string
	Bio        string
	Shifts     []string
	WorkDays   []string
}

// OrganizerPatch carries a null-field update: empty strings and nil
// pointers leave the stored value untouched.
type OrganizerPatch struct {
	Name       string
	Email      string
	Phone      string
	Active     *bool
	Department string
	Position   string
	Bio        string
	Shifts     *string
	WorkDays   *string
}

// TokenClaims are the identity claims embedded in a session token.
// Downstream authorization relies on exactly these three fields.
type TokenClaims struct {
	UserID    string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"exp"`
}
