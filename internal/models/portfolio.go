package models

import "time"

// Meta is the identity block shared by every editable document: a
// server-generated id plus creation/last-modified timestamps. The id is the
// only uniqueness constraint enforced by the store.
type Meta struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (m Meta) DocumentID() string { return m.ID }

// Stamp assigns a fresh identity. Called once, at creation, so that
// created_at and updated_at start out equal.
func (m *Meta) Stamp(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch refreshes the last-modified timestamp.
func (m *Meta) Touch(now time.Time) { m.UpdatedAt = now }

// Ordered is implemented by content types listed by caller-supplied display
// order, with creation time as the tie-break.
type Ordered interface {
	SortKey() (order int, createdAt time.Time)
}

// PersonalInfo is a singleton: the store never holds more than one document.
type PersonalInfo struct {
	Meta         `bson:",inline"`
	Name         string  `bson:"name" json:"name"`
	Role         string  `bson:"role" json:"role"`
	SubRole      string  `bson:"sub_role" json:"sub_role"`
	Location     string  `bson:"location" json:"location"`
	Email        string  `bson:"email" json:"email"`
	Phone        string  `bson:"phone" json:"phone"`
	LinkedIn     string  `bson:"linkedin" json:"linkedin"`
	Avatar       *string `bson:"avatar" json:"avatar"`
	AboutSummary string  `bson:"about_summary" json:"about_summary"`
}

type Skill struct {
	Meta     `bson:",inline"`
	Category string   `bson:"category" json:"category"`
	Items    []string `bson:"items" json:"items"`
	Order    int      `bson:"order" json:"order"`
}

func (s Skill) SortKey() (int, time.Time) { return s.Order, s.CreatedAt }

type Experience struct {
	Meta       `bson:",inline"`
	Title      string   `bson:"title" json:"title"`
	Company    string   `bson:"company" json:"company"`
	StartDate  string   `bson:"start_date" json:"start_date"`
	EndDate    *string  `bson:"end_date" json:"end_date"`
	Duration   string   `bson:"duration" json:"duration"`
	Logo       *string  `bson:"logo" json:"logo"`
	Highlights []string `bson:"highlights" json:"highlights"`
	Order      int      `bson:"order" json:"order"`
}

func (e Experience) SortKey() (int, time.Time) { return e.Order, e.CreatedAt }

type Education struct {
	Meta        `bson:",inline"`
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Year        string `bson:"year" json:"year"`
	Description string `bson:"description" json:"description"`
	Order       int    `bson:"order" json:"order"`
}

func (e Education) SortKey() (int, time.Time) { return e.Order, e.CreatedAt }

type Language struct {
	Meta  `bson:",inline"`
	Name  string `bson:"name" json:"name"`
	Level int    `bson:"level" json:"level"` // proficiency percentage, 0-100
	Order int    `bson:"order" json:"order"`
}

func (l Language) SortKey() (int, time.Time) { return l.Order, l.CreatedAt }

// Contact message statuses. Only unread is ever written today; read and
// replied are reserved for an inbox workflow that has no endpoints yet.
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ContactMessage is append-only: it carries no updated_at and is never
// modified after submission.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (m ContactMessage) DocumentID() string { return m.ID }
