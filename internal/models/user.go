package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database. PasswordHash never leaves
// the server.
type User struct {
	ID             uuid.UUID               `json:"id" db:"id"`
	Name           string                  `json:"name" db:"name"`
	Email          string                  `json:"email" db:"email"`
	PasswordHash   string                  `json:"-" db:"password_hash"`
	Phone          string                  `json:"phone" db:"phone"`
	Branch         string                  `json:"branch" db:"branch"`
	Year           string                  `json:"year" db:"year"`
	Roll           string                  `json:"roll" db:"roll"`
	Avatar         string                  `json:"avatar" db:"avatar"`
	Resume         string                  `json:"resume" db:"resume"`
	Skills         JSONList[string]        `json:"skills" db:"skills"`
	Interests      JSONList[string]        `json:"interests" db:"interests"`
	Education      JSONList[Education]     `json:"education" db:"education"`
	Achievements   JSONList[Achievement]   `json:"achievements" db:"achievements"`
	Projects       JSONList[Project]       `json:"projects" db:"projects"`
	Certifications JSONList[Certification] `json:"certifications" db:"certifications"`
	Socials        Socials                 `json:"socials" db:"socials"`
	CreatedAt      time.Time               `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time               `json:"updatedAt" db:"updated_at"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Socials holds profile links, stored as a JSONB object.
type Socials struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// Value implements driver.Valuer.
func (s Socials) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *Socials) Scan(src any) error {
	return scanJSON(src, s)
}

// ProfileUpdate is the whitelist of fields a user may change on their own
// profile. Nil means "leave as is". There is deliberately no password field.
type ProfileUpdate struct {
	Name           *string          `json:"name"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Branch         *string          `json:"branch"`
	Year           *string          `json:"year"`
	Roll           *string          `json:"roll"`
	Avatar         *string          `json:"avatar"`
	Resume         *string          `json:"resume"`
	Skills         *[]string        `json:"skills"`
	Interests      *[]string        `json:"interests"`
	Education      *[]Education     `json:"education"`
	Achievements   *[]Achievement   `json:"achievements"`
	Projects       *[]Project       `json:"projects"`
	Certifications *[]Certification `json:"certifications"`
	Socials        *Socials         `json:"socials"`
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}
