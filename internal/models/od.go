package models

import (
	"time"

	"github.com/google/uuid"
)

type ODType string

const (
	ODTypePlacement   ODType = "Placement"
	ODTypeSelfApplied ODType = "Self-Applied"
)

// Valid reports whether t is a known OD type.
func (t ODType) Valid() bool {
	return t == ODTypePlacement || t == ODTypeSelfApplied
}

// ODTypes lists every OD type.
var ODTypes = []ODType{ODTypePlacement, ODTypeSelfApplied}

type ODStatus string

const (
	ODStatusApplied   ODStatus = "Applied"
	ODStatusInProcess ODStatus = "In Process"
	ODStatusApproved  ODStatus = "Approved"
	ODStatusRejected  ODStatus = "Rejected"
)

// ODStatuses lists every OD status.
var ODStatuses = []ODStatus{ODStatusApplied, ODStatusInProcess, ODStatusApproved, ODStatusRejected}

// Valid reports whether s is a known OD status.
func (s ODStatus) Valid() bool {
	for _, v := range ODStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidDayOrder reports whether d is one of the timetable day orders 1..5.
func ValidDayOrder(d string) bool {
	return len(d) == 1 && d[0] >= '1' && d[0] <= '5'
}

// OD represents an on-duty application row.
type OD struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UserID          uuid.UUID  `json:"user" db:"user_id"`
	Type            ODType     `json:"type" db:"type"`
	Title           string     `json:"title" db:"title"`
	Reason          string     `json:"reason" db:"reason"`
	Date            time.Time  `json:"date" db:"od_date"`
	Status          ODStatus   `json:"status" db:"status"`
	Attachment      string     `json:"attachment,omitempty" db:"attachment"`
	Description     string     `json:"description,omitempty" db:"description"`
	DayOrder        string     `json:"dayOrder,omitempty" db:"day_order"`
	SalaryRange     string     `json:"salaryRange,omitempty" db:"salary_range"`
	JobType         string     `json:"jobType,omitempty" db:"job_type"`
	JobRole         string     `json:"jobRole,omitempty" db:"job_role"`
	ApplicationDate *time.Time `json:"applicationDate,omitempty" db:"application_date"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// ODInput carries the fields of a new OD as received from the client.
type ODInput struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Reason          string `json:"reason"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	Description     string `json:"description"`
	DayOrder        string `json:"dayOrder"`
	SalaryRange     string `json:"salaryRange"`
	JobType         string `json:"jobType"`
	JobRole         string `json:"jobRole"`
	ApplicationDate string `json:"applicationDate"`
	Attachment      string `json:"-"`
}

// ODPatch is a partial OD update; nil fields are left untouched.
type ODPatch struct {
	Type            *string `json:"type"`
	Title           *string `json:"title"`
	Reason          *string `json:"reason"`
	Date            *string `json:"date"`
	Status          *string `json:"status"`
	Description     *string `json:"description"`
	DayOrder        *string `json:"dayOrder"`
	SalaryRange     *string `json:"salaryRange"`
	JobType         *string `json:"jobType"`
	JobRole         *string `json:"jobRole"`
	ApplicationDate *string `json:"applicationDate"`
}

// ODFilter holds the optional equality filters of an OD listing.
type ODFilter struct {
	Type   string
	Status string
	Date   *time.Time
}
