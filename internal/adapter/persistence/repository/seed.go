package repository

import (
	"context"
	"time"

	"grafica_gestao/internal/domain/entities"

	"go.uber.org/zap"
)

// EnsureSeedData writes the fixed baseline into every collection that does
// not exist yet, so a fresh install is usable without manual setup. Seeding
// runs once per collection: an existing (even empty) item is left alone.
func (s *CollectionStore) EnsureSeedData(ctx context.Context) error {
	now := time.Now().UTC()

	seeds := []struct {
		name string
		data any
	}{
		{collectionProducts, seedProducts()},
		{collectionQuotes, seedQuotes(now)},
		{collectionOrders, seedProductionOrders(now)},
	}

	for _, seed := range seeds {
		ok, err := s.exists(ctx, seed.name)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := s.Save(ctx, seed.name, seed.data); err != nil {
			return err
		}
		s.logger.Info("seeded collection", zap.String("collection", seed.name))
	}
	return nil
}

func seedProducts() []entities.Product {
	return []entities.Product{
		{ID: "1", Name: "Lona Frontlight 440g", Unit: "m²", Price: 85.00, Cost: 35.00},
		{ID: "2", Name: "Adesivo Vinil Brilho", Unit: "m²", Price: 65.00, Cost: 25.00},
		{ID: "3", Name: "Cartão de Visita 300g (1000 un)", Unit: "milheiro", Price: 120.00, Cost: 45.00},
		{ID: "4", Name: "Instalação (Hora Técnica)", Unit: "hora", Price: 150.00, Cost: 0.00},
	}
}

func seedQuotes(now time.Time) []entities.Quote {
	return []entities.Quote{
		{
			ID:         "1001",
			ClientName: "Padaria do João",
			Items: []entities.QuoteItem{
				{ID: "a1", ProductID: "1", ProductName: "Lona Frontlight 440g", Quantity: 10, UnitPrice: 85.00, Total: 850.00},
			},
			Total:      850.00,
			Status:     entities.QuoteStatusAprovado,
			CreatedAt:  now.AddDate(0, 0, -2),
			ValidUntil: now.AddDate(0, 0, 5),
		},
		{
			ID:         "1002",
			ClientName: "Academia Fit",
			Items: []entities.QuoteItem{
				{ID: "b1", ProductID: "2", ProductName: "Adesivo Vinil Brilho", Quantity: 5, UnitPrice: 65.00, Total: 325.00},
			},
			Total:      325.00,
			Status:     entities.QuoteStatusEmAberto,
			CreatedAt:  now.AddDate(0, 0, -1),
			ValidUntil: now.AddDate(0, 0, 6),
		},
	}
}

func seedProductionOrders(now time.Time) []entities.ProductionOrder {
	return []entities.ProductionOrder{
		{
			ID:          "2001",
			QuoteID:     "1001",
			ClientName:  "Padaria do João",
			Title:       "Fachada em lona 4x2m",
			Stage:       entities.StageFilaDeImpressao,
			Priority:    entities.PriorityUrgente,
			Deadline:    now.AddDate(0, 0, 2),
			Description: "Lona frontlight 440g com ilhós a cada 50cm, arte final já aprovada.",
			Items:       []string{"Lona Frontlight 440g - 10m²", "Instalação"},
			Notes: []entities.OrderNote{
				{
					ID:        "n1",
					Text:      "Cliente aprovou a arte por WhatsApp, liberar para impressão.",
					Author:    "Wesley Oliveira",
					CreatedAt: now.Add(-12 * time.Hour),
				},
			},
		},
		{
			ID:          "2002",
			QuoteID:     "1002",
			ClientName:  "Academia Fit",
			Title:       "Adesivação de vitrine",
			Stage:       entities.StageAguardandoArte,
			Priority:    entities.PriorityNormal,
			Deadline:    now.AddDate(0, 0, 5),
			Description: "Vinil brilho recortado, aguardando logotipo em vetor do cliente.",
			Items:       []string{"Adesivo Vinil Brilho - 5m²"},
			Notes:       []entities.OrderNote{},
		},
		{
			ID:          "2003",
			ClientName:  "Dra. Carla Mendes",
			Title:       "Cartões de visita consultório",
			Stage:       entities.StageAcabamento,
			Priority:    entities.PriorityAlta,
			Deadline:    now.AddDate(0, 0, 1),
			Description: "1000 cartões 300g, laminação fosca frente e verso.",
			Items:       []string{"Cartão de Visita 300g (1000 un)"},
			Notes:       []entities.OrderNote{},
		},
	}
}
