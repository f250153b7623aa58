package stubserver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/larekshop/storefront/internal/domain"
)

// fixtureFile is the YAML shape of a catalog fixture.
type fixtureFile struct {
	Products []fixtureProduct `yaml:"products"`
}

type fixtureProduct struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Category    string   `yaml:"category"`
	Price       *float64 `yaml:"price"`
}

// LoadFixtures reads a product catalog from a YAML file.
func LoadFixtures(path string) ([]domain.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}

	products := make([]domain.Product, 0, len(file.Products))
	seen := make(map[string]bool, len(file.Products))
	for i, fp := range file.Products {
		if fp.ID == "" {
			return nil, fmt.Errorf("fixture product %d has no id", i)
		}
		if seen[fp.ID] {
			return nil, fmt.Errorf("fixture product id %q is duplicated", fp.ID)
		}
		if fp.Price != nil && *fp.Price < 0 {
			return nil, fmt.Errorf("fixture product %q has a negative price", fp.ID)
		}
		seen[fp.ID] = true
		products = append(products, domain.Product{
			ID:          fp.ID,
			Title:       fp.Title,
			Description: fp.Description,
			Image:       fp.Image,
			Category:    fp.Category,
			Price:       fp.Price,
		})
	}
	return products, nil
}

// DefaultCatalog is the built-in fixture used when no file is supplied.
func DefaultCatalog() []domain.Product {
	price := func(v float64) *float64 { return &v }
	return []domain.Product{
		{
			ID:          "rocket-badge",
			Title:       "Rocket Badge",
			Description: "A small enamel badge for people who ship.",
			Image:       "/rocket-badge.svg",
			Category:    "additional",
			Price:       price(95),
		},
		{
			ID:          "focus-timer",
			Title:       "Focus Timer",
			Description: "A desk timer that counts down in deep-work blocks.",
			Image:       "/focus-timer.svg",
			Category:    "hard-skill",
			Price:       price(450),
		},
		{
			ID:          "rubber-duck",
			Title:       "Debugging Duck",
			Description: "Listens to your explanation until the bug gives up.",
			Image:       "/rubber-duck.svg",
			Category:    "soft-skill",
			Price:       price(150),
		},
		{
			ID:          "infinity-mug",
			Title:       "Bottomless Mug",
			Description: "The mug every standup runs on. Not for sale, never was.",
			Image:       "/infinity-mug.svg",
			Category:    "other",
			Price:       nil,
		},
		{
			ID:          "deploy-button",
			Title:       "Big Deploy Button",
			Description: "A very satisfying button. Does nothing in production. Probably.",
			Image:       "/deploy-button.svg",
			Category:    "button",
			Price:       price(750),
		},
	}
}
