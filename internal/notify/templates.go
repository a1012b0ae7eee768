package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

type Event int

const (
	EventDeposit Event = iota + 1
	EventWithdrawal
	EventLoanRequest
	EventLoanApproval
	EventLoanRepayment
	EventTransfer
	EventPasswordChange
)

type eventTemplate struct {
	subject string
	name    string
}

var eventTemplates = map[Event]eventTemplate{
	EventDeposit:        {subject: "Deposit Confirmation", name: "deposit.html"},
	EventWithdrawal:     {subject: "Withdrawal Confirmation", name: "withdrawal.html"},
	EventLoanRequest:    {subject: "Loan Application Status", name: "loan_request.html"},
	EventLoanApproval:   {subject: "Loan Approval", name: "loan_approval.html"},
	EventLoanRepayment:  {subject: "Loan Repayment Confirmation", name: "loan_repayment.html"},
	EventTransfer:       {subject: "Transfer Confirmation", name: "transfer.html"},
	EventPasswordChange: {subject: "Password Change Confirmation", name: "password_change.html"},
}

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type templateData struct {
	Name   string
	Amount string
}

func render(event Event, name string, amount decimal.Decimal) (subject, html string, err error) {
	tmpl, ok := eventTemplates[event]
	if !ok {
		return "", "", fmt.Errorf("unknown notification event %d", event)
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, tmpl.name, templateData{
		Name:   name,
		Amount: amount.StringFixed(2),
	})
	if err != nil {
		return "", "", fmt.Errorf("render %s: %w", tmpl.name, err)
	}
	return tmpl.subject, buf.String(), nil
}
