package models

import (
	"time"

	"github.com/google/uuid"
)

type PlacementStatus string

const (
	PlacementApplicationSent  PlacementStatus = "Application Sent"
	PlacementShortlisted      PlacementStatus = "Shortlisted"
	PlacementPrePlacementTalk PlacementStatus = "Pre-Placement Talk"
	PlacementTest             PlacementStatus = "Test"
	PlacementInterview        PlacementStatus = "Interview"
	PlacementOffer            PlacementStatus = "Offer"
)

// PlacementPipeline lists placement statuses in pipeline order. The order is
// informational only; any status may follow any other.
var PlacementPipeline = []PlacementStatus{
	PlacementApplicationSent,
	PlacementShortlisted,
	PlacementPrePlacementTalk,
	PlacementTest,
	PlacementInterview,
	PlacementOffer,
}

// Valid reports whether s is a known placement status.
func (s PlacementStatus) Valid() bool {
	for _, v := range PlacementPipeline {
		if s == v {
			return true
		}
	}
	return false
}

type SalaryRange string

const (
	SalaryBelow5       SalaryRange = "Less than 5 LPA"
	Salary5To10        SalaryRange = "5-10 LPA"
	Salary10To20       SalaryRange = "10-20 LPA"
	SalaryAbove20      SalaryRange = "Above 20 LPA"
	SalaryNotDisclosed SalaryRange = "Not Disclosed"
)

var SalaryRanges = []SalaryRange{SalaryBelow5, Salary5To10, Salary10To20, SalaryAbove20, SalaryNotDisclosed}

// Valid reports whether r is a known salary range.
func (r SalaryRange) Valid() bool {
	for _, v := range SalaryRanges {
		if r == v {
			return true
		}
	}
	return false
}

type JobType string

const (
	JobIntern         JobType = "Intern"
	JobInternFullTime JobType = "Intern leads to Full Time"
	JobFullTime       JobType = "Full Time"
	JobOther          JobType = "Other"
)

var JobTypes = []JobType{JobIntern, JobInternFullTime, JobFullTime, JobOther}

// Valid reports whether j is a known job type.
func (j JobType) Valid() bool {
	for _, v := range JobTypes {
		if j == v {
			return true
		}
	}
	return false
}

// Placement represents a tracked job application row.
type Placement struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          uuid.UUID       `json:"user" db:"user_id"`
	Company         string          `json:"company" db:"company"`
	Status          PlacementStatus `json:"status" db:"status"`
	SalaryRange     SalaryRange     `json:"salaryRange" db:"salary_range"`
	Salary          *float64        `json:"salary,omitempty" db:"salary"`
	JobType         JobType         `json:"jobType" db:"job_type"`
	JobRole         string          `json:"jobRole,omitempty" db:"job_role"`
	ApplicationDate *time.Time      `json:"applicationDate,omitempty" db:"application_date"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// PlacementInput carries placement fields as received from the client.
// Empty strings mean "not supplied".
type PlacementInput struct {
	Company         string   `json:"company"`
	Status          string   `json:"status"`
	SalaryRange     string   `json:"salaryRange"`
	Salary          *float64 `json:"salary"`
	JobType         string   `json:"jobType"`
	JobRole         string   `json:"jobRole"`
	ApplicationDate string   `json:"applicationDate"`
}
