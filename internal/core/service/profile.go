package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

var profileValidator = validator.New()

// ProfileForm is the prefilled edit-profile screen state. Kind selects which
// business detail section the screen renders; the detail fields are empty
// for kinds without a block.
type ProfileForm struct {
	Name        string `validate:"required"`
	Email       string `validate:"omitempty,email"`
	PhoneNumber string
	Address     string

	Kind          domain.BusinessKind
	Staff         string
	RefundPolicy  string
	Description   string
	CitiesCovered string
}

// Profile drives the vendor edit-profile flow: loading the prefill from the
// cached user and saving edits back through the backend.
type Profile struct {
	session    *Session
	categories ports.CategoryAPI
	profiles   ports.ProfileAPI
	log        zerolog.Logger
}

func NewProfile(session *Session, categories ports.CategoryAPI, profiles ports.ProfileAPI, log zerolog.Logger) *Profile {
	return &Profile{session: session, categories: categories, profiles: profiles, log: log}
}

// Load builds the edit form from the cached user. The business kind is
// resolved by matching the user's category id against the catalogue through
// the explicit name→kind table; a failed catalogue fetch degrades to an
// unknown kind rather than blocking the screen.
func (p *Profile) Load(ctx context.Context) (*ProfileForm, error) {
	user, err := p.session.User(ctx)
	if err != nil {
		return nil, err
	}

	kind := domain.KindUnknown
	cats, err := p.categories.Categories(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("failed to fetch categories, business section hidden")
	} else {
		for _, c := range cats {
			if c.ID == user.BusinessCategoryID {
				kind = domain.KindForCategoryName(c.Name)
				break
			}
		}
	}

	form := &ProfileForm{
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Kind:        kind,
	}
	if form.Address == "" && user.ContactDetails != nil {
		form.Address = user.ContactDetails.Address
	}
	if d := user.DetailsFor(kind); d != nil {
		form.Staff = d.Staff
		form.RefundPolicy = d.RefundPolicy
		form.Description = d.Description
		form.CitiesCovered = d.CityCovered
	}
	return form, nil
}

// Save validates the form, patches the profile and overwrites the cached
// user with the record the backend returns. Any failure is returned for the
// screen to alert on; the cached user is left untouched in that case.
func (p *Profile) Save(ctx context.Context, form ProfileForm) error {
	if err := profileValidator.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, profileFieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}

	user, err := p.session.User(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return errors.New("user not found locally")
		}
		return err
	}

	updated, err := p.profiles.UpdateProfile(ctx, user.ID, ports.ProfileUpdate{
		Name:        form.Name,
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		Address:     form.Address,
	})
	if err != nil {
		p.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to save user data")
		return fmt.Errorf("save profile: %w", err)
	}

	if err := p.session.SetUser(ctx, updated); err != nil {
		return fmt.Errorf("cache updated profile: %w", err)
	}
	p.log.Info().Str("user_id", user.ID).Msg("profile updated")
	return nil
}

func profileFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
