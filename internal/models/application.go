package models

import "time"

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is one admissions submission.
type Application struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	FirstName   string `gorm:"column:first_name;type:text" json:"first_name"`
	LastName    string `gorm:"column:last_name;type:text" json:"last_name"`
	Email       string `gorm:"column:email;type:text;index" json:"email"`
	Phone       string `gorm:"column:phone;type:text" json:"phone"`
	DateOfBirth string `gorm:"column:date_of_birth;type:text" json:"date_of_birth"`
	Address     string `gorm:"column:address;type:text" json:"address"`

	ProgramInterest     string `gorm:"column:program_interest;type:text" json:"program_interest"`
	EducationBackground string `gorm:"column:education_background;type:text" json:"education_background"`
	MotivationStatement string `gorm:"column:motivation_statement;type:text" json:"motivation_statement"`

	EmergencyContactName         string `gorm:"column:emergency_contact_name;type:text" json:"emergency_contact_name"`
	EmergencyContactPhone        string `gorm:"column:emergency_contact_phone;type:text" json:"emergency_contact_phone"`
	EmergencyContactRelationship string `gorm:"column:emergency_contact_relationship;type:text" json:"emergency_contact_relationship"`

	Status ApplicationStatus `gorm:"column:status;type:text;index" json:"status"`

	SubmittedAt time.Time `gorm:"column:submitted_at;type:timestamptz;index" json:"submitted_at"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }
