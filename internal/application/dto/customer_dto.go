package dto

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// CustomerResponse representación pública de un cliente.
type CustomerResponse struct {
	CustomerID      int64      `json:"customerId"`
	Name            string     `json:"customerName"`
	Phone           string     `json:"phone"`
	AlternateNumber string     `json:"alternateNumber,omitempty"`
	Email           string     `json:"email,omitempty"`
	InvestmentID    string     `json:"investmentId,omitempty"`
	InvestmentCode  string     `json:"investmentCode,omitempty"`
	InvestedDate    *time.Time `json:"investedDate,omitempty"`
	ChequeNo        string     `json:"chequeNo,omitempty"`
	PANNumber       string     `json:"panNumber,omitempty"`
	Portfolio       string     `json:"portfolio,omitempty"`
	ChannelPartner  string     `json:"channelPartner,omitempty"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	LastContactDate *time.Time `json:"lastContactDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// NewCustomerResponse convierte la entidad a su forma pública.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:      c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		AlternateNumber: c.AlternateNumber,
		Email:           c.Email,
		InvestmentID:    c.InvestmentID,
		InvestmentCode:  c.InvestmentCode,
		InvestedDate:    c.InvestedDate,
		ChequeNo:        c.ChequeNo,
		PANNumber:       c.PANNumber,
		Portfolio:       c.Portfolio,
		ChannelPartner:  c.ChannelPartner,
		Status:          c.Status,
		Notes:           c.Notes,
		LastContactDate: c.LastContactDate,
		CreatedAt:       c.CreatedAt,
	}
}

// CustomerRequest alta/actualización de cliente (solo Admin).
type CustomerRequest struct {
	Name            string     `json:"customerName"`
	Phone           string     `json:"phone"`
	AlternateNumber string     `json:"alternateNumber"`
	Email           string     `json:"email"`
	InvestmentID    string     `json:"investmentId"`
	InvestmentCode  string     `json:"investmentCode"`
	InvestedDate    *time.Time `json:"investedDate"`
	ChequeNo        string     `json:"chequeNo"`
	PANNumber       string     `json:"panNumber"`
	Portfolio       string     `json:"portfolio"`
	ChannelPartner  string     `json:"channelPartner"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
}

// Valid re-valida los invariantes mínimos.
func (r CustomerRequest) Valid() bool {
	if len(r.Name) < 2 || r.Phone == "" {
		return false
	}
	if r.Status != "" && !entity.ValidCustomerStatus(r.Status) {
		return false
	}
	return true
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination Pagination         `json:"pagination"`
}
