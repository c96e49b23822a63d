package domain

// Payment is the tagged payment variant submitted at checkout. Only the
// method name ends up on the order; the carried fields are accepted as-is
// and never verified against a gateway.
type Payment interface {
	Method() string
}

type CardPayment struct {
	Number       string `json:"number"`
	Holder       string `json:"holder"`
	Expiry       string `json:"expiry"`
	CVV          string `json:"cvv"`
	Installments int    `json:"installments"`
}

func (CardPayment) Method() string { return "credit" }

type BoletoPayment struct {
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

func (BoletoPayment) Method() string { return "boleto" }

type PixPayment struct {
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (PixPayment) Method() string { return "pix" }
