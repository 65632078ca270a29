package department

import "github.com/cmlabs-hris/hris-console/internal/domain/record"

type Department struct {
	ID          record.ID     `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Manager     string        `json:"manager"`
	Budget      record.Amount `json:"budget"`
}
