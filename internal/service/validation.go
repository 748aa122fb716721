package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/castromatias32878-collab/WebVastum2025/internal/dto"
)

var (
	// RFC 5322 dot-atom: atext runs separated by single dots.
	localPartPattern = regexp.MustCompile("^[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+(\\.[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+)*$")
	labelPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	tldPattern       = regexp.MustCompile(`^([a-z]{2,}|xn--[a-z0-9-]+)$`)
	idnaProfile      = idna.Lookup
	validate         = newValidator()
)

const (
	defaultPhoneRegion = "AR"
	fieldTipoEmpresa   = "tipoEmpresa"
	maxLocalPartLength = 64
	maxEmailLength     = 254
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return isValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateContactShape checks presence and format of every contact field and
// reports all failures at once. The company type is only checked for presence.
func ValidateContactShape(req dto.ContactRequest) error {
	fields := collectFieldErrors(req)
	if req.TipoEmpresa == nil {
		fields[fieldTipoEmpresa] = "es obligatorio"
	}
	if len(fields) > 0 {
		return &ShapeError{Fields: fields}
	}
	return nil
}

// ValidateCompanyType requires value to be exactly one of allowed.
func ValidateCompanyType(value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return &DomainError{
		Field:   fieldTipoEmpresa,
		Value:   value,
		Allowed: append([]string(nil), allowed...),
		Message: "Tipo de empresa inválido. Debe ser uno de: " + strings.Join(allowed, ", "),
	}
}

// ValidateLogoShape requires a non-empty name and image. The image is opaque.
func ValidateLogoShape(req dto.LogoRequest) error {
	if fields := collectFieldErrors(req); len(fields) > 0 {
		return &ShapeError{Fields: fields}
	}
	return nil
}

func collectFieldErrors(req any) map[string]string {
	fields := map[string]string{}
	err := validate.Struct(req)
	if err == nil {
		return fields
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "contact_email":
		return "debe ser un email válido"
	default:
		return "es inválido"
	}
}

// isValidEmail accepts a dot-atom local part and a domain that converts to
// ASCII with the IDNA lookup profile.
func isValidEmail(raw string) bool {
	if raw == "" || raw != strings.TrimSpace(raw) {
		return false
	}
	at := strings.LastIndex(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return false
	}
	local, domain := raw[:at], raw[at+1:]
	if len(local) > maxLocalPartLength || !localPartPattern.MatchString(local) {
		return false
	}
	ascii, err := idnaProfile.ToASCII(domain)
	if err != nil || ascii == "" {
		return false
	}
	ascii = strings.ToLower(ascii)
	if len(local)+1+len(ascii) > maxEmailLength {
		return false
	}
	return isDomainValid(ascii)
}

// isDomainValid checks an ASCII domain: at least two labels, none empty or
// hyphen-bounded, and an alphabetic or punycode TLD.
func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
		if len(part) > 63 || !labelPattern.MatchString(part) {
			return false
		}
	}
	return tldPattern.MatchString(parts[len(parts)-1])
}

// normalizePhone returns the E.164 form of raw, or "" when it is not a valid
// number for region.
func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
