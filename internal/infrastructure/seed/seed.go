package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
)

//go:embed data/*.json
var files embed.FS

// Dataset é o conteúdo inicial de todas as coleções
type Dataset struct {
	Users           []entities.User
	Suitability     []entities.Suitability
	Sessions        []entities.Session
	Recommendations []entities.Recommendation
	Plans           []entities.Plan
	Contracts       []entities.Contract
	Payments        []entities.Payment
	Cards           []entities.Card
}

// Load decodifica os JSONs embutidos. Cada chamada devolve cópias novas.
func Load() (Dataset, error) {
	var ds Dataset
	targets := []struct {
		name string
		dst  any
	}{
		{"users.json", &ds.Users},
		{"suitability.json", &ds.Suitability},
		{"sessions.json", &ds.Sessions},
		{"recommendations.json", &ds.Recommendations},
		{"plans.json", &ds.Plans},
		{"contracts.json", &ds.Contracts},
		{"payments.json", &ds.Payments},
		{"cards.json", &ds.Cards},
	}
	for _, t := range targets {
		data, err := files.ReadFile("data/" + t.name)
		if err != nil {
			return Dataset{}, fmt.Errorf("read seed %s: %w", t.name, err)
		}
		if err := json.Unmarshal(data, t.dst); err != nil {
			return Dataset{}, fmt.Errorf("decode seed %s: %w", t.name, err)
		}
	}
	return ds, nil
}

// MustLoad é Load para inicialização e testes; entra em pânico se o seed embutido estiver corrompido
func MustLoad() Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}
