// Package models defines the records stored by jsonconsole.
package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Employee is a staff member with an hourly salary.
type Employee struct {
	ID            int             `json:"Id" yaml:"id" jsonschema:"description=Unique positive identifier assigned on creation"`
	FirstName     string          `json:"FirstName" yaml:"first_name" jsonschema:"description=Given name"`
	LastName      string          `json:"LastName" yaml:"last_name" jsonschema:"description=Family name"`
	SalaryPerHour decimal.Decimal `json:"SalaryPerHour" yaml:"salary_per_hour" jsonschema:"type=number,description=Hourly salary"`
}

// MarshalJSON writes SalaryPerHour as a JSON number, matching existing store
// files, without touching decimal.MarshalJSONWithoutQuotes.
func (e Employee) MarshalJSON() ([]byte, error) {
	type plain Employee
	return json.Marshal(struct {
		*plain
		SalaryPerHour json.Number `json:"SalaryPerHour"`
	}{(*plain)(&e), json.Number(e.SalaryPerHour.String())})
}

// Clone returns an independent copy.
func (e *Employee) Clone() *Employee {
	c := *e
	return &c
}

// GetID returns the identifier.
func (e *Employee) GetID() int {
	return e.ID
}

// SetID sets the identifier.
func (e *Employee) SetID(id int) {
	e.ID = id
}

// Validate checks that the salary is not negative.
func (e *Employee) Validate() error {
	if e.SalaryPerHour.IsNegative() {
		return errors.New("salary per hour must not be negative")
	}
	return nil
}

// String renders the employee on one line.
func (e *Employee) String() string {
	return fmt.Sprintf("Id = %d, FirstName = %s, LastName = %s, SalaryPerHour = %s", e.ID, e.FirstName, e.LastName, e.SalaryPerHour)
}
