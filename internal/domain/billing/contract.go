package billing

import "github.com/PavaniTiago/advisor-api/internal/utils"

// DefaultDurationDays vale para planos sem duração cadastrada
const DefaultDurationDays = 30

// ExpiresAt calcula o vencimento do contrato a partir da data de início
func ExpiresAt(start string, durationDays int) (string, error) {
	if durationDays <= 0 {
		durationDays = DefaultDurationDays
	}
	return utils.AddDays(start, durationDays)
}
