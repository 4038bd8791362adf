package entity

import (
	"strings"

	"github.com/questx-lab/wizard/pkg/enum"
)

type Status string

var (
	StatusPublic  = enum.New(Status("public"))
	StatusPrivate = enum.New(Status("private"))
)

type JoinFee string

var (
	JoinFeeFree = enum.New(JoinFee("free"))
	JoinFeePaid = enum.New(JoinFee("paid"))
)

type Currency string

var (
	CurrencyUSD = enum.New(Currency("USD"))
	CurrencyTND = enum.New(Currency("TND"))
	CurrencyEUR = enum.New(Currency("EUR"))
)

type PriceType string

var (
	PriceTypeFree    = enum.New(PriceType("free"))
	PriceTypeOneTime = enum.New(PriceType("one-time"))
	PriceTypeMonthly = enum.New(PriceType("monthly"))
	PriceTypeYearly  = enum.New(PriceType("yearly"))
)

type RecurringInterval string

// RecurringIntervalUnset is the zero value and is not part of the enum.
const RecurringIntervalUnset RecurringInterval = ""

var (
	RecurringIntervalMonth = enum.New(RecurringInterval("month"))
	RecurringIntervalYear  = enum.New(RecurringInterval("year"))
	RecurringIntervalWeek  = enum.New(RecurringInterval("week"))
)

type DiscountKind string

var (
	DiscountEarlyBird = enum.New(DiscountKind("earlyBird"))
	DiscountGroup     = enum.New(DiscountKind("group"))
	DiscountMember    = enum.New(DiscountKind("member"))
)

const (
	MinPrice            = 0
	MaxPrice            = 1_000_000
	MinFreeTrialDays    = 0
	MaxFreeTrialDays    = 30
	MinInstallmentCount = 2
	MaxInstallmentCount = 12
	MinDiscount         = 0
	MaxDiscount         = 100
)

type PaymentOptions struct {
	AllowInstallments bool `json:"allowInstallments"`
	InstallmentCount  int  `json:"installmentCount"`
	EarlyBirdDiscount int  `json:"earlyBirdDiscount"`
	GroupDiscount     int  `json:"groupDiscount"`
	MemberDiscount    int  `json:"memberDiscount"`
}

type PricingConfig struct {
	Price             float64           `json:"price"`
	Currency          Currency          `json:"currency"`
	PriceType         PriceType         `json:"priceType"`
	IsRecurring       bool              `json:"isRecurring"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"`
	FreeTrialDays     int               `json:"freeTrialDays"`
	PaymentOptions    PaymentOptions    `json:"paymentOptions"`
}

type Media struct {
	Logo  string
	Cover string
}

// CommunityDraft is the in-progress, not yet submitted community.
type CommunityDraft struct {
	Name            string
	Country         string
	Bio             string
	LongDescription string
	Category        string
	Tags            []string
	Status          Status

	// Legacy top-level mirror of Pricing, kept for the request payload.
	JoinFee   JoinFee
	FeeAmount string
	Currency  Currency

	Pricing     PricingConfig
	SocialLinks map[Platform]string
	Media       Media
}

func NewCommunityDraft() CommunityDraft {
	return CommunityDraft{
		Status:   StatusPublic,
		JoinFee:  JoinFeeFree,
		Currency: CurrencyUSD,
		Pricing: PricingConfig{
			Currency:  CurrencyUSD,
			PriceType: PriceTypeFree,
			PaymentOptions: PaymentOptions{
				InstallmentCount: MinInstallmentCount,
			},
		},
		SocialLinks: map[Platform]string{},
	}
}

func (d CommunityDraft) Clone() CommunityDraft {
	c := d
	if d.Tags != nil {
		c.Tags = append([]string(nil), d.Tags...)
	}

	c.SocialLinks = make(map[Platform]string, len(d.SocialLinks))
	for k, v := range d.SocialLinks {
		c.SocialLinks[k] = v
	}

	return c
}

// HasSocialLink reports whether at least one social link is not blank.
func (d CommunityDraft) HasSocialLink() bool {
	for _, v := range d.SocialLinks {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// ParseTags splits a comma separated list, trimming items and dropping empty
// ones.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
