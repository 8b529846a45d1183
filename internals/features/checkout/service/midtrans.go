package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"summerschool_backend/internals/configs"
	"summerschool_backend/internals/features/checkout/dto"
)

type IntentParams struct {
	OrderID   string
	ClassID   string
	ClassName string
	Amount    float64
	Email     string
	Name      string
}

// PaymentGateway creates a hosted payment page for one class seat.
type PaymentGateway interface {
	CreateIntent(p IntentParams) (*dto.IntentResponse, error)
}

type MidtransGateway struct {
	client snap.Client
}

// NewMidtransGateway returns nil when no server key is configured.
func NewMidtransGateway(cfg configs.Midtrans) *MidtransGateway {
	if cfg.ServerKey == "" {
		return nil
	}
	env := midtrans.Sandbox
	if cfg.UseProduction {
		env = midtrans.Production
	}
	g := &MidtransGateway{}
	g.client.New(cfg.ServerKey, env)
	return g
}

func (g *MidtransGateway) CreateIntent(p IntentParams) (*dto.IntentResponse, error) {
	req := buildSnapRequest(p)
	resp, mErr := g.client.CreateTransaction(req)
	if mErr != nil {
		return nil, mErr
	}
	return &dto.IntentResponse{Token: resp.Token, RedirectURL: resp.RedirectURL, OrderID: p.OrderID}, nil
}

func buildSnapRequest(p IntentParams) *snap.Request {
	amount := int64(p.Amount)
	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.OrderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: p.Name,
			Email: p.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       p.ClassID,
				Price:    amount,
				Qty:      1,
				Name:     truncate(p.ClassName, 50),
				Category: "class",
			},
		},
		CustomField1: p.ClassID,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
