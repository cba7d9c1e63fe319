package advisory

import (
	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/suitability"
)

var portfolios = map[suitability.Profile][]entities.Asset{
	suitability.Conservative: {
		{Name: "Tesouro Selic 2029", Percentage: 40, Description: "Título público com liquidez diária"},
		{Name: "CDB Banco XP", Percentage: 35, Description: "Certificado com proteção do FGC"},
		{Name: "Fundo DI", Percentage: 25, Description: "Fundo de renda fixa conservador"},
	},
	suitability.Moderate: {
		{Name: "Tesouro IPCA+ 2035", Percentage: 40, Description: "Título público atrelado à inflação"},
		{Name: "CDB Banco XP", Percentage: 30, Description: "Certificado com proteção do FGC"},
		{Name: "Fundo Multimercado", Percentage: 20, Description: "Estratégias diversificadas com gestão ativa"},
		{Name: "ETF BOVA11", Percentage: 10, Description: "Exposição ao Ibovespa"},
	},
	suitability.AggressiveGrowth: {
		{Name: "Ações Brasil", Percentage: 35, Description: "Carteira de ações de empresas brasileiras"},
		{Name: "Fundo Multimercado", Percentage: 25, Description: "Estratégias diversificadas com gestão ativa"},
		{Name: "Tesouro IPCA+ 2035", Percentage: 20, Description: "Título público atrelado à inflação"},
		{Name: "Fundos Imobiliários", Percentage: 20, Description: "Renda mensal com imóveis"},
	},
	suitability.Aggressive: {
		{Name: "Ações Brasil", Percentage: 45, Description: "Carteira de ações de empresas brasileiras"},
		{Name: "BDRs", Percentage: 25, Description: "Exposição a empresas estrangeiras"},
		{Name: "Fundo Multimercado", Percentage: 20, Description: "Estratégias diversificadas com gestão ativa"},
		{Name: "Tesouro Selic 2029", Percentage: 10, Description: "Reserva com liquidez diária"},
	},
}

// Portfolio devolve a carteira sugerida para o perfil
func Portfolio(profile suitability.Profile) (entities.RecommendationOutput, error) {
	if !profile.Valid() {
		return entities.RecommendationOutput{}, ErrUnknownProfile
	}
	assets := portfolios[profile]
	return entities.RecommendationOutput{
		Profile: string(profile),
		Assets:  append([]entities.Asset(nil), assets...),
	}, nil
}
