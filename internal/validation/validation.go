// Package validation проверяет параметры и тела запросов.
package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/xeipuuv/gojsonschema"
)

var mobileRe = regexp.MustCompile(`^[0-9]{10}$`)

// MobileNumber требует ровно 10 цифр. Пустое значение тоже ошибка.
func MobileNumber(mobileNumber string) error {
	if !mobileRe.MatchString(mobileNumber) {
		return apperr.Validation("mobileNumber: Mobile number must be 10 digits")
	}
	return nil
}

const customerSchema = `{
  "type": "object",
  "required": ["name", "email", "mobileNumber"],
  "properties": {
    "name": {"type": "string", "minLength": 5, "maxLength": 30},
    "email": {"type": "string", "minLength": 1, "format": "email"},
    "mobileNumber": {"type": "string", "pattern": "^[0-9]{10}$"},
    "account": {
      "type": "object",
      "required": ["accountNumber", "accountType", "branchAddress"],
      "properties": {
        "accountNumber": {"type": "integer", "minimum": 1000000000, "maximum": 9999999999},
        "accountType": {"type": "string", "minLength": 1},
        "branchAddress": {"type": "string", "minLength": 1}
      }
    }
  }
}`

const loanSchema = `{
  "type": "object",
  "required": ["mobileNumber", "loanNumber", "loanType", "totalLoan", "amountPaid"],
  "properties": {
    "mobileNumber": {"type": "string", "pattern": "^[0-9]{10}$"},
    "loanNumber": {"type": "string", "pattern": "^[0-9]{12}$"},
    "loanType": {"type": "string", "minLength": 1},
    "totalLoan": {"type": "integer", "minimum": 1},
    "amountPaid": {"type": "integer", "minimum": 0},
    "outstandingAmount": {"type": "integer", "minimum": 0}
  }
}`

const cardSchema = `{
  "type": "object",
  "required": ["mobileNumber", "cardNumber", "cardType", "totalLimit", "amountUsed"],
  "properties": {
    "mobileNumber": {"type": "string", "pattern": "^[0-9]{10}$"},
    "cardNumber": {"type": "string", "pattern": "^[0-9]{12}$"},
    "cardType": {"type": "string", "minLength": 1},
    "totalLimit": {"type": "integer", "minimum": 1},
    "amountUsed": {"type": "integer", "minimum": 0},
    "availableAmount": {"type": "integer", "minimum": 0}
  }
}`

// Схемы тел запросов create/update
var (
	CustomerSchema = mustSchema(customerSchema)
	LoanSchema     = mustSchema(loanSchema)
	CardSchema     = mustSchema(cardSchema)
)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("validation: bad schema: " + err.Error())
	}
	return schema
}

// Body проверяет JSON-тело по схеме. Все нарушения собираются в одну ошибку.
func Body(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return apperr.Validation("body: malformed JSON")
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.Field() + ": " + desc.Description()
	}
	sort.Strings(errs)
	return apperr.Validation(strings.Join(errs, "; "))
}
