package root

import (
	"context"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Login signs in with an emailed one-time code. First-time users complete
// their profile before the identity is persisted.
func (h *Handler) Login(ctx context.Context) error {
	cfg := h.configService.GetConfig()
	if cfg.LoggedIn() {
		printer.Infof("Already logged in as %s. Run 'schedulebuddy logout' to switch accounts.\n", cfg.UserEmail)
		return nil
	}

	email, err := h.promptEmail(ctx)
	if err != nil {
		return err
	}

	message, err := h.apiClient.RequestOTP(ctx, email)
	if err != nil {
		return err
	}
	if message == "" {
		message = "We emailed you a one-time code."
	}
	printer.Infoln(message)

	verification, err := h.verifyCode(ctx, email)
	if err != nil {
		return err
	}

	if verification.IsNewUser {
		if err := h.completeProfile(ctx, email); err != nil {
			return err
		}
	}

	profile, err := h.apiClient.GetUserProfile(ctx, email)
	if err != nil {
		return err
	}

	cfg.UserEmail = email
	cfg.FirstName = profile.FirstName
	cfg.LastName = profile.LastName
	cfg.Church = profile.Church
	cfg.Organizations = profile.ScheduleBuddy.Organizations
	cfg.OrganizationID = ""
	if len(profile.ScheduleBuddy.Organizations) == 1 {
		cfg.OrganizationID = profile.ScheduleBuddy.Organizations[0]
	}
	if err := h.configService.Save(); err != nil {
		return eris.Wrap(err, "Failed to save login")
	}

	name := profile.FirstName
	if name == "" {
		name = email
	}
	printer.Successf("Welcome, %s!\n", name)
	if len(profile.ScheduleBuddy.Organizations) == 0 {
		printer.Infoln("You don't belong to any organization yet. Ask an admin to invite you.")
	} else if cfg.OrganizationID == "" {
		printer.Infoln("Pick an organization with 'schedulebuddy organization switch'.")
	}
	return nil
}

// Logout clears the persisted identity.
func (h *Handler) Logout(ctx context.Context) error {
	cfg := h.configService.GetConfig()
	if !cfg.LoggedIn() {
		printer.Infoln("You are not logged in.")
		return nil
	}

	email := cfg.UserEmail
	if err := h.configService.Clear(); err != nil {
		return eris.Wrap(err, "Failed to clear login")
	}
	printer.Successf("Logged out %s\n", email)
	return nil
}

// DeleteAccount clears everything stored on this device. The server-side
// profile teardown happens through the scheduling service itself.
func (h *Handler) DeleteAccount(ctx context.Context) error {
	cfg := h.configService.GetConfig()
	if !cfg.LoggedIn() {
		printer.Infoln("You are not logged in.")
		return nil
	}

	confirmed, err := h.inputService.Confirm(ctx,
		"Remove your ScheduleBuddy data from this device? (y/n)", "n")
	if err != nil {
		return err
	}
	if !confirmed {
		printer.Infoln("Canceled.")
		return nil
	}

	if err := h.configService.Clear(); err != nil {
		return eris.Wrap(err, "Failed to clear account data")
	}
	printer.Successln("Your data has been removed from this device.")
	return nil
}

func (h *Handler) promptEmail(ctx context.Context) (string, error) {
	value, err := h.inputService.Prompt(ctx, "Email", "")
	if err != nil {
		return "", err
	}
	email := models.NormalizeEmail(value)
	if !emailPattern.MatchString(email) {
		return "", eris.Errorf("invalid email address %q", strings.TrimSpace(value))
	}
	return email, nil
}

// verifyCode exchanges the emailed code. Entering "r" requests a fresh code.
func (h *Handler) verifyCode(ctx context.Context, email string) (models.OTPVerification, error) {
	for {
		code, err := h.inputService.Prompt(ctx, "Enter the code from your email (or 'r' to resend)", "")
		if err != nil {
			return models.OTPVerification{}, err
		}
		code = strings.TrimSpace(code)

		if strings.EqualFold(code, "r") {
			if _, err := h.apiClient.RequestOTP(ctx, email); err != nil {
				return models.OTPVerification{}, err
			}
			printer.Infoln("Sent a new code.")
			continue
		}

		return h.apiClient.VerifyOTP(ctx, email, code)
	}
}

// completeProfile collects the profile of a first-time user. New accounts
// start with an empty organization list; invites fill it in later.
func (h *Handler) completeProfile(ctx context.Context, email string) error {
	firstName, err := h.promptRequired(ctx, "First name")
	if err != nil {
		return err
	}
	lastName, err := h.promptRequired(ctx, "Last name")
	if err != nil {
		return err
	}
	church, err := h.promptRequired(ctx, "Church or organization you attend")
	if err != nil {
		return err
	}

	profile := models.Profile{
		FirstName: firstName,
		LastName:  lastName,
		Church:    church,
	}
	return h.apiClient.UpdateUserProfile(ctx, email, profile)
}

func (h *Handler) promptRequired(ctx context.Context, label string) (string, error) {
	for {
		value, err := h.inputService.Prompt(ctx, label, "")
		if err != nil {
			return "", err
		}
		if value = strings.TrimSpace(value); value != "" {
			return value, nil
		}
		printer.Infoln(label + " is required.")
	}
}
