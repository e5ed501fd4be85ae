package midtrans

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var ErrNotConfigured = errors.New("midtrans server key is not configured")

//go:generate mockgen -source=midtrans_service.go -destination=../mock/midtrans/midtrans_service_mock.go -package=mock
type Service interface {
	CreateTransactionToken(req *CreateTransactionRequest) (*CreateTransactionResponse, error)
	VerifySignature(n Notification) bool
}

type service struct {
	client    snap.Client
	serverKey string
}

func NewService(serverKey string, isProduction bool) Service {
	env := midtransgo.Sandbox
	if isProduction {
		env = midtransgo.Production
	}

	c := snap.Client{}
	c.New(serverKey, env)

	return &service{
		client:    c,
		serverKey: strings.TrimSpace(serverKey),
	}
}

func (s *service) CreateTransactionToken(req *CreateTransactionRequest) (*CreateTransactionResponse, error) {
	if s.serverKey == "" {
		return nil, ErrNotConfigured
	}

	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
	}
	if req.Customer != nil {
		snapReq.CustomerDetail = &midtransgo.CustomerDetails{
			FName: req.Customer.FirstName,
			LName: req.Customer.LastName,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		}
	}

	items := make([]midtransgo.ItemDetails, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, midtransgo.ItemDetails{
			ID:    item.ID,
			Price: item.Price,
			Qty:   item.Qty,
			Name:  item.Name,
		})
	}
	snapReq.Items = &items

	snapResp, err := s.client.CreateTransaction(snapReq)
	if err != nil {
		return nil, err
	}

	return &CreateTransactionResponse{
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// VerifySignature checks signature_key = sha512(order_id + status_code +
// gross_amount + server_key).
func (s *service) VerifySignature(n Notification) bool {
	if s.serverKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare(
		[]byte(Signature(n.OrderID, n.StatusCode, n.GrossAmount, s.serverKey)),
		[]byte(strings.ToLower(strings.TrimSpace(n.SignatureKey))),
	) == 1
}

func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	hash := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(hash[:])
}
