package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
)

// RequestOTP asks the server to email a one-time code. The returned string is
// the server's confirmation message, when it sends one.
func (c *Client) RequestOTP(ctx context.Context, email string) (string, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	payload := map[string]string{"email": email}
	body, err := c.sendRequest(ctx, http.MethodPost, "/auth/request-otp/", payload)
	if err != nil {
		return "", eris.Wrap(err, "Failed to request one-time code")
	}
	return gjson.GetBytes(body, "message").String(), nil
}

// VerifyOTP exchanges the emailed code for a verification result.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (models.OTPVerification, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return models.OTPVerification{}, ErrEmailRequired
	}
	if code == "" {
		return models.OTPVerification{}, eris.New("verification code is required")
	}
	payload := map[string]string{"email": email, "otp": code}
	body, err := c.sendRequest(ctx, http.MethodPost, "/auth/verify-otp/", payload)
	if err != nil {
		return models.OTPVerification{}, eris.Wrap(err, "Failed to verify one-time code")
	}
	return decodeResponse[models.OTPVerification](body)
}

// GetUserProfile fetches the account record for the given email.
func (c *Client) GetUserProfile(ctx context.Context, email string) (models.Profile, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return models.Profile{}, ErrEmailRequired
	}
	body, err := c.sendRequest(ctx, http.MethodGet, "/users/"+url.PathEscape(email), nil)
	if err != nil {
		return models.Profile{}, eris.Wrap(err, "Failed to get user profile")
	}
	return decodeResponse[models.Profile](body)
}

// UpdateUserProfile replaces the account record for the given email. New
// accounts start with an empty organization list.
func (c *Client) UpdateUserProfile(ctx context.Context, email string, profile models.Profile) error {
	email = models.NormalizeEmail(email)
	if email == "" {
		return ErrEmailRequired
	}
	if profile.ScheduleBuddy.Organizations == nil {
		profile.ScheduleBuddy.Organizations = []string{}
	}
	_, err := c.sendRequest(ctx, http.MethodPut, "/users/"+url.PathEscape(email), profile)
	if err != nil {
		return eris.Wrap(err, "Failed to update user profile")
	}
	return nil
}
