// Package types provides type definitions for structured data used throughout the tax-return-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/shopspring/decimal"

// DocumentType identifies the kind of tax document a piece of text was
// classified as. The string values match the labels printed on the forms.
type DocumentType string

// Supported document types
const (
	DocTypeW2      DocumentType = "W-2"
	DocType1099INT DocumentType = "1099-INT"
	DocType1099NEC DocumentType = "1099-NEC"
	DocTypeUnknown DocumentType = "Unknown"
)

// SupportedDocumentTypes lists the document types the extractor understands,
// in classification order.
var SupportedDocumentTypes = []DocumentType{DocTypeW2, DocType1099INT, DocType1099NEC}

// NotFound is the sentinel used for name fields that could not be extracted.
const NotFound = "Not found"

// TaxDocument is the tagged-variant interface over extracted documents.
// Concrete implementations are W2, Form1099INT, and Form1099NEC. Values are
// created once by the extractor and never mutated afterwards.
type TaxDocument interface {
	// Type returns the document kind tag.
	Type() DocumentType
}

// W2 holds the fields extracted from a Form W-2 wage statement.
// Monetary fields default to zero, name fields to the NotFound sentinel.
type W2 struct {
	Wages               decimal.Decimal `json:"wages"`
	FederalTaxWithheld  decimal.Decimal `json:"federal_tax_withheld"`
	SocialSecurityWages decimal.Decimal `json:"social_security_wages"`
	MedicareWages       decimal.Decimal `json:"medicare_wages"`
	EmployerName        string          `json:"employer_name"`
	EmployeeName        string          `json:"employee_name"`
}

// Type returns DocTypeW2.
func (*W2) Type() DocumentType { return DocTypeW2 }

// Form1099INT holds the fields extracted from a Form 1099-INT interest statement.
type Form1099INT struct {
	InterestIncome         decimal.Decimal `json:"interest_income"`
	EarlyWithdrawalPenalty decimal.Decimal `json:"early_withdrawal_penalty"`
	PayerName              string          `json:"payer_name"`
	RecipientName          string          `json:"recipient_name"`
}

// Type returns DocType1099INT.
func (*Form1099INT) Type() DocumentType { return DocType1099INT }

// Form1099NEC holds the fields extracted from a Form 1099-NEC nonemployee
// compensation statement.
type Form1099NEC struct {
	NonemployeeCompensation decimal.Decimal `json:"nonemployee_compensation"`
	PayerName               string          `json:"payer_name"`
	RecipientName           string          `json:"recipient_name"`
}

// Type returns DocType1099NEC.
func (*Form1099NEC) Type() DocumentType { return DocType1099NEC }
