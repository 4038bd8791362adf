package model

import "github.com/questx-lab/wizard/internal/entity"

// CreateCommunityRequest is the payload of the create-community endpoint.
// Fields are sent as multipart form values named by their structs tag; the
// media URIs are sent separately.
type CreateCommunityRequest struct {
	Name            string               `structs:"name"`
	Country         string               `structs:"country"`
	Bio             string               `structs:"bio"`
	LongDescription string               `structs:"longDescription"`
	Category        string               `structs:"category"`
	Tags            []string             `structs:"tags"`
	Status          string               `structs:"status"`
	JoinFee         string               `structs:"joinFee"`
	FeeAmount       string               `structs:"feeAmount"`
	Currency        string               `structs:"currency"`
	Pricing         entity.PricingConfig `structs:"pricing"`
	SocialLinks     map[string]string    `structs:"socialLinks"`

	Logo  string `structs:"-"`
	Cover string `structs:"-"`
}

// CreateCommunityResponse is the {success, error} envelope returned by the
// endpoint.
type CreateCommunityResponse struct {
	Success bool
	Error   string
	ID      string
}
