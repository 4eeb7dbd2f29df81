package entity

import "time"

// Estados válidos para Customer.
const (
	CustomerActive = "Active"
	CustomerHold   = "Hold"
	CustomerClosed = "Closed"
)

// Customer representa un inversionista/cliente contactable por el equipo.
type Customer struct {
	ID              int64
	Name            string
	Phone           string
	AlternateNumber string
	Email           string

	// Datos de inversión
	InvestmentID   string
	InvestmentCode string
	InvestedDate   *time.Time
	ChequeNo       string
	PANNumber      string

	Portfolio      string
	ChannelPartner string

	Status          string // Active, Hold, Closed
	Notes           string
	LastContactDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidCustomerStatus verifica pertenencia al enum de estados.
func ValidCustomerStatus(s string) bool {
	switch s {
	case CustomerActive, CustomerHold, CustomerClosed:
		return true
	}
	return false
}
