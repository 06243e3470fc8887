package model

import (
	"context"
	"time"
)

// LeadStore defines persistence operations for inbound leads.
type LeadStore interface {
	Create(ctx context.Context, lead Lead) (Lead, error)
	// List returns all leads, newest first.
	List(ctx context.Context) ([]Lead, error)
	UpdateStatus(ctx context.Context, id string, status LeadStatus, actor string, at time.Time) (Lead, error)
	Delete(ctx context.Context, id string) error
}

// Lead is a contact form or demo request submitted from the public site.
type Lead struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Message   string
	Location  string
	DemoDate  string
	DemoTime  string
	Type      LeadType
	Level     LeadLevel
	Status    LeadStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
	UpdatedBy string
}

// LeadStatus is the CRM workflow state of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusRejected  LeadStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusRejected:
		return true
	}
	return false
}

// LeadType tells which site form produced the lead.
type LeadType string

const (
	LeadTypeDemoRequest LeadType = "demo_request"
	LeadTypeContactForm LeadType = "contact_form"
)

func (t LeadType) Valid() bool {
	return t == LeadTypeDemoRequest || t == LeadTypeContactForm
}

// LeadLevel is the self-reported playing level.
type LeadLevel string

const (
	LeadLevelBeginner     LeadLevel = "Beginner"
	LeadLevelIntermediate LeadLevel = "Intermediate"
	LeadLevelAdvanced     LeadLevel = "Advanced"
	LeadLevelIndividual   LeadLevel = "Individual"
)

func (l LeadLevel) Valid() bool {
	switch l {
	case LeadLevelBeginner, LeadLevelIntermediate, LeadLevelAdvanced, LeadLevelIndividual:
		return true
	}
	return false
}
