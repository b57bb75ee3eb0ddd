// ABOUTME: Onboarding endpoints for the business profile
// ABOUTME: Submits the combined wizard selection and profile payload
package api

import (
	"context"
	"net/http"

	"calldeck/models"
)

// SubmitBusinessProfile creates the business profile in one request. The
// payload carries the wizard's classification denormalized alongside the
// free-text fields and lists.
func (c *Client) SubmitBusinessProfile(ctx context.Context, profile *models.BusinessProfile) error {
	return c.do(ctx, http.MethodPost, "/onboarding/business-profile/", profile, nil)
}

// GetBusinessProfile fetches the stored business profile.
func (c *Client) GetBusinessProfile(ctx context.Context) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	if err := c.do(ctx, http.MethodGet, "/onboarding/business-profile/get/", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
