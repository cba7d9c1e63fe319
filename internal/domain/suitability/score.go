package suitability

const (
	MinOptionScore = 1
	MaxOptionScore = 4
)

// Profile é a classificação do investidor derivada da pontuação total
type Profile string

const (
	Conservative     Profile = "Conservative"
	Moderate         Profile = "Moderate"
	AggressiveGrowth Profile = "Aggressive-growth"
	Aggressive       Profile = "Aggressive"
)

// Profiles lista os perfis do menos para o mais arriscado
var Profiles = []Profile{Conservative, Moderate, AggressiveGrowth, Aggressive}

var sourceLabels = map[Profile]string{
	Conservative:     "Conservador",
	Moderate:         "Moderado",
	AggressiveGrowth: "Arrojado",
	Aggressive:       "Agressivo",
}

// Label retorna o nome do perfil exibido ao cliente
func (p Profile) Label() string {
	if l, ok := sourceLabels[p]; ok {
		return l
	}
	return string(p)
}

// Valid informa se p é um dos quatro perfis conhecidos
func (p Profile) Valid() bool {
	_, ok := sourceLabels[p]
	return ok
}

// Score soma as pontuações informadas. Não verifica completude.
func Score(answers Answers) int {
	total := 0
	for _, a := range answers {
		total += a.Score
	}
	return total
}

// Classify mapeia a pontuação total para o perfil.
// Faixas: até 8, 9-12, 13-16, 17 ou mais.
func Classify(total int) Profile {
	switch {
	case total <= 8:
		return Conservative
	case total <= 12:
		return Moderate
	case total <= 16:
		return AggressiveGrowth
	default:
		return Aggressive
	}
}
