package utils

import "time"

// DateLayout é o formato de data (sem hora) usado em todos os registros
const DateLayout = "2006-01-02"

// GetBrasilLocation retorna a localização de São Paulo (UTC-3)
// Esta função deve ser usada em todo o projeto para obter o fuso horário padrão brasileiro,
// garantindo consistência em todas as operações relacionadas a data e hora.
func GetBrasilLocation() *time.Location {
	brazilLocation, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Fallback para UTC-3 se não conseguir carregar a localização
		brazilLocation = time.FixedZone("BRT", -3*60*60)
	}
	return brazilLocation
}

// FormatDate converte um instante para a data de calendário em São Paulo (YYYY-MM-DD)
func FormatDate(t time.Time) string {
	return t.In(GetBrasilLocation()).Format(DateLayout)
}

// AddDays soma dias a uma data no formato YYYY-MM-DD
func AddDays(date string, days int) (string, error) {
	t, err := time.ParseInLocation(DateLayout, date, GetBrasilLocation())
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}
