package billing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Dados do único cartão aceito no ambiente de testes
const (
	SandboxNumber = "9999999999999999"
	SandboxCVV    = "999"
	SandboxExpiry = "25/12"
)

const (
	BrandVisa       = "Visa"
	BrandMastercard = "Mastercard"
)

var ErrInvalidCard = errors.New("invalid card")

// FieldError aponta o campo do cartão que foi recusado
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidCard
}

// CardInput é o cartão digitado pelo usuário. Number e CVV nunca são persistidos.
type CardInput struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Brand      string `json:"brand"`
}

// NormalizeNumber remove espaços e hífens
func NormalizeNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

// ValidateCard aceita apenas o cartão de testes
func ValidateCard(in CardInput) error {
	if NormalizeNumber(in.Number) != SandboxNumber {
		return &FieldError{Field: "number", Message: "Número do cartão deve ser: 9999 9999 9999 9999"}
	}
	if strings.TrimSpace(in.CVV) != SandboxCVV {
		return &FieldError{Field: "cvv", Message: "CVV deve ser: 999"}
	}
	if strings.TrimSpace(in.Expiry) != SandboxExpiry {
		return &FieldError{Field: "expiry", Message: "Data de vencimento deve ser: 25/12"}
	}
	if strings.TrimSpace(in.HolderName) == "" {
		return &FieldError{Field: "holder_name", Message: "Nome do titular é obrigatório"}
	}
	if _, err := NormalizeBrand(in.Brand); err != nil {
		return err
	}
	return nil
}

// NormalizeBrand devolve a bandeira canônica; vazio vira Visa
func NormalizeBrand(brand string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(brand)) {
	case "", "visa":
		return BrandVisa, nil
	case "mastercard":
		return BrandMastercard, nil
	}
	return "", &FieldError{Field: "brand", Message: "Bandeira deve ser Visa ou Mastercard"}
}

// Mask mantém só os quatro últimos dígitos
func Mask(number string) string {
	digits := NormalizeNumber(number)
	if len(digits) < 4 {
		return "**** **** **** " + digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// NewToken gera o identificador opaco que substitui o número do cartão
func NewToken() string {
	return "token_" + uuid.NewString()
}
