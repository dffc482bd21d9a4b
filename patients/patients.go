package patients

import (
	"context"
)

// TanExpiryWindowDays is the fixed lookahead used when filtering patients
// whose treatment authorization is about to expire.
const TanExpiryWindowDays = 30

type Service interface {
	Create(ctx context.Context, patient Patient) (*Patient, error)
	List(ctx context.Context, filter *Filter) ([]*Patient, error)
	Get(ctx context.Context, id string) (*Patient, error)
	Update(ctx context.Context, id string, update PatientUpdate) (*Patient, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter *CountFilter) (int, error)
}

type Doctor struct {
	Name    string  `json:"name" bson:"name"`
	Phone   string  `json:"phone" bson:"phone"`
	Fax     string  `json:"fax" bson:"fax"`
	Address *string `json:"address,omitempty" bson:"address,omitempty"`
}

type Patient struct {
	Id               string   `json:"id" bson:"id"`
	FirstName        string   `json:"first_name" bson:"first_name"`
	LastName         string   `json:"last_name" bson:"last_name"`
	Phone            string   `json:"phone" bson:"phone"`
	Address          string   `json:"address" bson:"address"`
	Height           *string  `json:"height,omitempty" bson:"height,omitempty"`
	Weight           *string  `json:"weight,omitempty" bson:"weight,omitempty"`
	Icd10Codes       []string `json:"icd10_codes" bson:"icd10_codes"`
	Doctor           Doctor   `json:"doctor" bson:"doctor"`
	CurrentTan       string   `json:"current_tan" bson:"current_tan"`
	TanExpiryDate    string   `json:"tan_expiry_date" bson:"tan_expiry_date"`
	MedicaidId       string   `json:"medicaid_id" bson:"medicaid_id"`
	MedicaidEligible bool     `json:"medicaid_eligible" bson:"medicaid_eligible"`
	LastBillingDate  *string  `json:"last_billing_date,omitempty" bson:"last_billing_date,omitempty"`
	Products         []string `json:"products" bson:"products"`
	Notes            string   `json:"notes" bson:"notes"`
	CreatedAt        string   `json:"created_at" bson:"created_at"`
	UpdatedAt        string   `json:"updated_at" bson:"updated_at"`
}

// PatientUpdate is a typed partial update. Only non-nil fields are merged
// onto the stored document; the id and created_at are immutable.
type PatientUpdate struct {
	FirstName        *string   `json:"first_name"`
	LastName         *string   `json:"last_name"`
	Phone            *string   `json:"phone"`
	Address          *string   `json:"address"`
	Height           *string   `json:"height"`
	Weight           *string   `json:"weight"`
	Icd10Codes       *[]string `json:"icd10_codes"`
	Doctor           *Doctor   `json:"doctor"`
	CurrentTan       *string   `json:"current_tan"`
	TanExpiryDate    *string   `json:"tan_expiry_date"`
	MedicaidId       *string   `json:"medicaid_id"`
	MedicaidEligible *bool     `json:"medicaid_eligible"`
	LastBillingDate  *string   `json:"last_billing_date"`
	Products         *[]string `json:"products"`
	Notes            *string   `json:"notes"`
}

type Filter struct {
	Search      *string
	TanExpiring bool
}

type CountFilter struct {
	CreatedInMonth   *string
	BilledInMonth    *string
	MedicaidEligible *bool
}
