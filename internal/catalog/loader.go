package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/CookieClicker_Go/configs"
	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/logger"
	"github.com/osse101/CookieClicker_Go/internal/progression"
	"github.com/osse101/CookieClicker_Go/internal/validation"
)

// Sentinel errors for catalog loader
var (
	ErrDuplicateID = errors.New("duplicate producer id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON producer catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Producers []Def `json:"producers"`
}

// Def represents a single producer definition in the JSON
type Def struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Icon        string  `json:"icon"`
	BaseCost    int64   `json:"base_cost"`
	BaseYield   float64 `json:"base_yield"`
}

var schemaValidator = validation.NewFSSchemaValidator(configs.Schemas)

// Load reads a catalog JSON file, checks it against the embedded schema and
// parses it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := schemaValidator.ValidateBytes(data, configs.ProducersSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaValidationFailed, ErrInvalidConfig, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog for errors
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Producers) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoProducersDefined)
	}

	ids := make(map[string]bool, len(config.Producers))
	for i := range config.Producers {
		if err := validateDef(i, &config.Producers[i], ids); err != nil {
			return err
		}
	}

	return nil
}

func validateDef(index int, def *Def, ids map[string]bool) error {
	if def.ID == "" {
		return fmt.Errorf(ErrFmtProducerAtIndexEmpty, ErrInvalidConfig, index)
	}

	// ids become part of storage keys
	if strings.Contains(def.ID, ":") {
		return fmt.Errorf(ErrFmtProducerIDHasSeparator, ErrInvalidConfig, def.ID)
	}

	if ids[def.ID] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateID, def.ID)
	}
	ids[def.ID] = true

	if def.DisplayName == "" {
		return fmt.Errorf(ErrFmtProducerEmptyName, ErrInvalidConfig, def.ID)
	}
	if def.BaseCost <= 0 {
		return fmt.Errorf(ErrFmtProducerNonPositive, ErrInvalidConfig, def.ID)
	}
	if def.BaseCost < progression.MinGrowingCost {
		return fmt.Errorf(ErrFmtProducerCostTooLow, ErrInvalidConfig, def.ID, progression.MinGrowingCost)
	}
	if def.BaseYield < 0 {
		return fmt.Errorf(ErrFmtProducerNegativeYield, ErrInvalidConfig, def.ID)
	}

	return nil
}

// ToProducers converts the definitions into unowned producers in file order
func (c *Config) ToProducers() []domain.Producer {
	out := make([]domain.Producer, 0, len(c.Producers))
	for _, def := range c.Producers {
		out = append(out, domain.Producer{
			ID:          def.ID,
			DisplayName: def.DisplayName,
			Icon:        def.Icon,
			BaseYield:   def.BaseYield,
			BaseCost:    def.BaseCost,
			CurrentCost: def.BaseCost,
		})
	}
	return out
}

// LoadOrDefault returns the catalog at path, or the built-in catalog when
// path is empty. A configured but broken catalog is an error.
func LoadOrDefault(path string) ([]domain.Producer, error) {
	if path == "" {
		logger.Info(LogMsgCatalogFallback)
		return domain.DefaultCatalog(), nil
	}

	config, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(config); err != nil {
		return nil, err
	}

	logger.Info(LogMsgCatalogLoaded, "path", path, "version", config.Version, "producers", len(config.Producers))
	return config.ToProducers(), nil
}
