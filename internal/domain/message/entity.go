package message

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusResponded Status = "responded"
	StatusRead      Status = "read"
)

type Message struct {
	ID          string
	EmployeeID  *string
	Name        string
	Email       string
	MessageType string
	Text        string
	Status      Status
	CreatedAt   time.Time
}

type FAQCategory string

const (
	CategoryLeave    FAQCategory = "Leave Policies"
	CategoryPayroll  FAQCategory = "Payroll"
	CategoryBenefits FAQCategory = "Benefits"
	CategoryGeneral  FAQCategory = "General"
)

var FAQCategories = []FAQCategory{CategoryLeave, CategoryPayroll, CategoryBenefits, CategoryGeneral}

type FAQ struct {
	ID        string
	Question  string
	Answer    string
	Category  FAQCategory
	IsActive  bool
	CreatedAt time.Time
}

type Announcement struct {
	ID        string
	Title     string
	Body      string
	Date      *time.Time
	IsActive  bool
	CreatedAt time.Time
}
