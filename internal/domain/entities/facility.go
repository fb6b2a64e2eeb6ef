package entities

// FacilityStatus marks whether a facility is operating.

type FacilityStatus string

const (
	FacilityStatusActive   FacilityStatus = "active"
	FacilityStatusInactive FacilityStatus = "inactive"
)

// Facility is one clinic facility record as supplied by the administration
// collaborators. Clinic counters are plain sums maintained upstream; absent
// counters are zero.
type Facility struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Sector            string         `json:"sector"`
	Category          string         `json:"category"`
	Status            FacilityStatus `json:"status"`
	TotalClinics      int            `json:"total_clinics"`
	WorkingClinics    int            `json:"working_clinics"`
	OutOfOrderClinics int            `json:"out_of_order_clinics"`
	NotWorkingClinics int            `json:"not_working_clinics"`
}
