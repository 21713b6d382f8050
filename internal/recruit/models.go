package recruit

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application statuses. Received is assigned on intake; the remaining
// five are set by staff through the admin console.
const (
	StatusReceived           = "Received"
	StatusUnderReview        = "Under Review"
	StatusInterviewScheduled = "Interview Scheduled"
	StatusOfferExtended      = "Offer Extended"
	StatusHired              = "Hired"
	StatusRejected           = "Rejected"
)

// notifySet lists the statuses whose transition triggers an applicant email.
var notifySet = map[string]bool{
	StatusHired:              true,
	StatusRejected:           true,
	StatusOfferExtended:      true,
	StatusInterviewScheduled: true,
	StatusUnderReview:        true,
}

// StatusNotifies reports whether setting the given status should send an email.
func StatusNotifies(status string) bool { return notifySet[status] }

// UpdateWhitelist is the fixed set of fields an admin update may modify.
// Anything else in the request body is silently dropped.
var UpdateWhitelist = []string{"status", "notes", "rating", "interviewStartTime", "interviewEndTime"}

// Application is a submitted job application. Field keys are kept camelCase
// in both JSON and the store so existing admin-console documents keep working.
type Application struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName          string         `json:"firstName" bson:"firstName"`
	LastName           string         `json:"lastName" bson:"lastName"`
	Email              string         `json:"email" bson:"email"`
	Position           string         `json:"position" bson:"position"`
	Age                string         `json:"age" bson:"age"`
	Degree             string         `json:"degree" bson:"degree"`
	UploadedResumeURL  string         `json:"uploadedResumeUrl,omitempty" bson:"uploadedResumeUrl,omitempty"`
	SubmittedAt        time.Time      `json:"submittedAt" bson:"submittedAt"`
	Viewed             bool           `json:"viewed" bson:"viewed"`
	Status             string         `json:"status,omitempty" bson:"status,omitempty"`
	Notes              string         `json:"notes,omitempty" bson:"notes,omitempty"`
	Rating             float64        `json:"rating,omitempty" bson:"rating,omitempty"`
	InterviewStartTime string         `json:"interviewStartTime,omitempty" bson:"interviewStartTime,omitempty"`
	InterviewEndTime   string         `json:"interviewEndTime,omitempty" bson:"interviewEndTime,omitempty"`
	Extra              map[string]any `json:"extra,omitempty" bson:",inline"`
}

// Inquiry is a contact-form submission.
type Inquiry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Message     string    `json:"message" bson:"message"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
	Viewed      bool      `json:"viewed" bson:"viewed"`
}

// Position is an open role. Staff may attach arbitrary attributes beyond
// the title; they round-trip through the inline map.
type Position struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title      string         `json:"title" bson:"title"`
	Attributes map[string]any `json:"attributes,omitempty" bson:",inline"`
}
