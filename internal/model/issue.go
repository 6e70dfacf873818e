package model

import "time"

// Issue status constants. The vocabulary is fixed; the storage engine
// rejects literals outside this set.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusScheduled  = "scheduled"
	StatusUrgent     = "urgent"
	StatusFixed      = "fixed"
)

// Issue priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Issue type constants (equipment and facility categories).
const (
	TypeFryer          = "fryer"
	TypeGrill          = "grill"
	TypeIceCream       = "ice_cream_machine"
	TypeDrinkDispenser = "drink_dispenser"
	TypeRefrigerator   = "refrigerator"
	TypeSeating        = "seating"
	TypeCounter        = "counter"
	TypeBathroom       = "bathroom"
	TypeFloor          = "floor"
	TypeCeiling        = "ceiling"
	TypeLighting       = "lighting"
	TypeHVAC           = "hvac"
	TypeExterior       = "exterior"
	TypePlayground     = "playground"
	TypeDriveThru      = "drive_thru"
	TypeOther          = "other"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusScheduled:  true,
	StatusUrgent:     true,
	StatusFixed:      true,
}

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

var validTypes = map[string]bool{
	TypeFryer:          true,
	TypeGrill:          true,
	TypeIceCream:       true,
	TypeDrinkDispenser: true,
	TypeRefrigerator:   true,
	TypeSeating:        true,
	TypeCounter:        true,
	TypeBathroom:       true,
	TypeFloor:          true,
	TypeCeiling:        true,
	TypeLighting:       true,
	TypeHVAC:           true,
	TypeExterior:       true,
	TypePlayground:     true,
	TypeDriveThru:      true,
	TypeOther:          true,
}

// ValidStatus reports whether s is one of the known issue statuses.
func ValidStatus(s string) bool { return validStatuses[s] }

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p string) bool { return validPriorities[p] }

// ValidIssueType reports whether t is one of the known issue types.
func ValidIssueType(t string) bool { return validTypes[t] }

// ResolvedStatus reports whether s counts as resolved for statistics
// purposes (fixed or completed).
func ResolvedStatus(s string) bool {
	return s == StatusFixed || s == StatusCompleted
}

// Issue is a single reported maintenance problem.
type Issue struct {
	// ID is assigned by storage on creation and never reused.
	ID int64 `json:"id"`

	// Title is the short human-readable summary. Never empty.
	Title string `json:"title"`

	// Description is the full report text.
	Description string `json:"description"`

	// Location is a free-text label; there is no location table behind it.
	Location string `json:"location"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Priority is one of the Priority* constants.
	Priority string `json:"priority"`

	// IssueType is one of the Type* constants.
	IssueType string `json:"issueType"`

	// Latitude/Longitude are optional geographic coordinates.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// PinX/PinY are optional plan-relative pin coordinates, independent
	// of the geographic pair. IsInteriorPin marks the pin as placed on
	// an interior plan.
	PinX          *float64 `json:"pinX,omitempty"`
	PinY          *float64 `json:"pinY,omitempty"`
	IsInteriorPin bool     `json:"isInteriorPin"`

	// ReportedByID optionally references a user; ReportedByName is the
	// denormalized reporter label and is kept even without the reference.
	ReportedByID   *int64 `json:"reportedById,omitempty"`
	ReportedByName string `json:"reportedByName"`

	// EstimatedCost defaults to zero; FinalCost is set only on resolution.
	EstimatedCost float64  `json:"estimatedCost"`
	FinalCost     *float64 `json:"finalCost,omitempty"`

	// Resolution fields, populated by the transition into StatusFixed.
	// TimeToFix is derived (whole minutes from creation to fix), never
	// accepted as caller input.
	FixedByID   *int64     `json:"fixedById,omitempty"`
	FixedByName *string    `json:"fixedByName,omitempty"`
	FixedAt     *time.Time `json:"fixedAt,omitempty"`
	TimeToFix   *int64     `json:"timeToFix,omitempty"`

	// ImageURLs is the ordered list of attached image URLs. Empty list,
	// never nil.
	ImageURLs []string `json:"imageUrls"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewIssue carries the caller-supplied fields for issue creation.
// Zero-valued Status, Priority, and IssueType are defaulted by the store.
type NewIssue struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	IssueType      string   `json:"issueType,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	PinX           *float64 `json:"pinX,omitempty"`
	PinY           *float64 `json:"pinY,omitempty"`
	IsInteriorPin  bool     `json:"isInteriorPin,omitempty"`
	ReportedByID   *int64   `json:"reportedById,omitempty"`
	ReportedByName string   `json:"reportedByName,omitempty"`
	EstimatedCost  float64  `json:"estimatedCost,omitempty"`
	FinalCost      *float64 `json:"finalCost,omitempty"`
	ImageURLs      []string `json:"imageUrls,omitempty"`
}
