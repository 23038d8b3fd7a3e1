package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *playgroundvalidator.Validate {
	v := playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled())

	// Report json names so field errors line up with request payloads.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "objective", func(fl playgroundvalidator.FieldLevel) bool {
		return Objective(fl.Field().String()).Valid()
	})
	mustRegister(v, "campaign_status", func(fl playgroundvalidator.FieldLevel) bool {
		return CampaignStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "placement", func(fl playgroundvalidator.FieldLevel) bool {
		return KnownPlacement(fl.Field().String())
	})
	mustRegister(v, "call_to_action", func(fl playgroundvalidator.FieldLevel) bool {
		return KnownCallToAction(fl.Field().String())
	})
	return v
}

func mustRegister(v *playgroundvalidator.Validate, tag string, fn playgroundvalidator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// fieldLabels are the human names used in messages.
var fieldLabels = map[string]string{
	"metaAccountId":   "Meta account",
	"name":            "Campaign name",
	"objective":       "Campaign objective",
	"budgetType":      "Budget type",
	"budget":          "Budget",
	"ageMin":          "Minimum age",
	"ageMax":          "Maximum age",
	"genders":         "Gender",
	"locations":       "Location",
	"placements":      "Placement",
	"adName":          "Ad name",
	"headline":        "Headline",
	"adText":          "Ad text",
	"description":     "Description",
	"callToAction":    "Call to action",
	"destinationUrl":  "Destination URL",
	"imageUrl":        "Image URL",
	"email":           "Email",
	"password":        "Password",
	"status":          "Status",
	"appId":           "App ID",
	"appSecret":       "App secret",
	"appName":         "App name",
	"webhookUrl":      "Webhook URL",
	"avatar":          "Avatar URL",
	"currentPassword": "Current password",
	"newPassword":     "New password",
	"message":         "Message",
	"metrics":         "Metric",
	"period":          "Period",
}

// namespaceLabels override fieldLabels where a json name means something
// else outside the campaign builder.
var namespaceLabels = map[string]string{
	"Registration.name":  "Name",
	"ProfileUpdate.name": "Name",
}

func label(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func message(fe playgroundvalidator.FieldError) string {
	name, ok := namespaceLabels[fe.Namespace()]
	if !ok {
		name = label(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "Select at least one " + strings.ToLower(name)
		}
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", name, strings.ToLower(label(lowerFirst(fe.Param()))))
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", name, strings.ToLower(label(lowerFirst(fe.Param()))))
	case "url":
		return name + " must be a valid URL"
	case "email":
		return name + " must be a valid email address"
	case "oneof", "objective", "campaign_status", "placement", "call_to_action", "len":
		return fmt.Sprintf("%s has an unsupported value %v", name, fe.Value())
	default:
		return name + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Validate checks v against its struct tags and returns a ValidationError
// listing every offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs playgroundvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Message: "validation failed", Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}
