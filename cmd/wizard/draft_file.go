package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/wizard/internal/domain/wizard"
	"github.com/questx-lab/wizard/internal/entity"
	"github.com/questx-lab/wizard/pkg/enum"
	"github.com/questx-lab/wizard/pkg/errorx"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// DraftFile is what a user would have typed into the wizard. Numeric fields
// are kept as text, the wizard coerces them the same way it does for input
// fields.
type DraftFile struct {
	Name            string `mapstructure:"name"`
	Country         string `mapstructure:"country"`
	Bio             string `mapstructure:"bio"`
	LongDescription string `mapstructure:"long_description"`
	Category        string `mapstructure:"category"`
	Tags            string `mapstructure:"tags"`
	Status          string `mapstructure:"status"`
	Logo            string `mapstructure:"logo"`
	Cover           string `mapstructure:"cover"`

	Pricing     DraftPricing      `mapstructure:"pricing"`
	SocialLinks map[string]string `mapstructure:"social_links"`
}

type DraftPricing struct {
	PriceType         string            `mapstructure:"price_type"`
	Price             string            `mapstructure:"price"`
	Currency          string            `mapstructure:"currency"`
	FreeTrialDays     string            `mapstructure:"free_trial_days"`
	AllowInstallments bool              `mapstructure:"allow_installments"`
	InstallmentCount  string            `mapstructure:"installment_count"`
	Discounts         map[string]string `mapstructure:"discounts"`
}

func loadDraftFile(path string) (DraftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DraftFile{}, err
	}

	return decodeDraftFile(filepath.Ext(path), data)
}

func decodeDraftFile(ext string, data []byte) (DraftFile, error) {
	raw := map[string]any{}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return DraftFile{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return DraftFile{}, err
		}
	default:
		return DraftFile{}, errorx.New(errorx.BadRequest, "Unsupported draft file type %q", ext)
	}

	var f DraftFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &f,
	})
	if err != nil {
		return DraftFile{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return DraftFile{}, err
	}

	return f, nil
}

// Updates turns the file into the events the wizard would receive from its
// input fields, in screen order. Unknown choices are reported together.
func (f DraftFile) Updates() ([]wizard.Update, error) {
	var errs []error
	updates := []wizard.Update{
		wizard.SetName(f.Name),
		wizard.SetCountry(f.Country),
		wizard.SetBio(f.Bio),
		wizard.SetLongDescription(f.LongDescription),
		wizard.SetCategory(f.Category),
		wizard.SetTags(f.Tags),
	}

	if f.Status != "" {
		status, err := enum.ToEnum[entity.Status](f.Status)
		if err != nil {
			errs = append(errs, choiceError("status", f.Status))
		} else {
			updates = append(updates, wizard.SetStatus(status))
		}
	}

	if f.Logo != "" {
		updates = append(updates, wizard.SetLogo(f.Logo))
	}

	if f.Cover != "" {
		updates = append(updates, wizard.SetCover(f.Cover))
	}

	p := f.Pricing
	if p.PriceType != "" {
		priceType, err := enum.ToEnum[entity.PriceType](p.PriceType)
		if err != nil {
			errs = append(errs, choiceError("price type", p.PriceType))
		} else {
			updates = append(updates, wizard.SetPriceType(priceType))
		}
	}

	if p.Price != "" {
		updates = append(updates, wizard.SetPrice(p.Price))
	}

	if p.Currency != "" {
		currency, err := enum.ToEnum[entity.Currency](strings.ToUpper(p.Currency))
		if err != nil {
			errs = append(errs, choiceError("currency", p.Currency))
		} else {
			updates = append(updates, wizard.SetCurrency(currency))
		}
	}

	if p.FreeTrialDays != "" {
		updates = append(updates, wizard.SetFreeTrialDays(p.FreeTrialDays))
	}

	updates = append(updates, wizard.SetAllowInstallments(p.AllowInstallments))
	if p.InstallmentCount != "" {
		updates = append(updates, wizard.SetInstallmentCount(p.InstallmentCount))
	}

	kinds := maps.Keys(p.Discounts)
	slices.Sort(kinds)
	for _, k := range kinds {
		kind, err := enum.ToEnum[entity.DiscountKind](k)
		if err != nil {
			errs = append(errs, choiceError("discount", k))
			continue
		}
		updates = append(updates, wizard.SetDiscount{Kind: kind, Value: p.Discounts[k]})
	}

	platforms := maps.Keys(f.SocialLinks)
	slices.Sort(platforms)
	for _, k := range platforms {
		platform, err := enum.ToEnum[entity.Platform](strings.ToLower(k))
		if err != nil {
			errs = append(errs, choiceError("platform", k))
			continue
		}
		updates = append(updates, wizard.SetSocialLink{Platform: platform, Value: f.SocialLinks[k]})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return updates, nil
}

func choiceError(field, value string) error {
	return errorx.New(errorx.BadRequest, "Invalid %s %q", field, value)
}
