package ingest

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/flightpath/core"
)

// Columns is the exact header every dataset must carry.
var Columns = []string{
	"flight_no",
	"origin",
	"destination",
	"departure",
	"arrival",
	"base_price",
	"bag_price",
	"bags_allowed",
}

// Row is one CSV data row keyed by column name.
type Row map[string]string

// RowValidator checks a raw row before it is converted.
// line is the row's 1-based line number in the file.
type RowValidator interface {
	ValidateRow(line int, row Row) error
}

// RowValidatorFunc adapts a function to RowValidator.
type RowValidatorFunc func(line int, row Row) error

// ValidateRow calls fn(line, row).
func (fn RowValidatorFunc) ValidateRow(line int, row Row) error {
	return fn(line, row)
}

// rawFlight mirrors Columns; tags describe the accepted text of each field.
type rawFlight struct {
	FlightNo    string `csv:"flight_no" validate:"required"`
	Origin      string `csv:"origin" validate:"required"`
	Destination string `csv:"destination" validate:"required"`
	Departure   string `csv:"departure" validate:"required,datetime=2006-01-02T15:04:05"`
	Arrival     string `csv:"arrival" validate:"required,datetime=2006-01-02T15:04:05"`
	BasePrice   string `csv:"base_price" validate:"required,nonnegdecimal"`
	BagPrice    string `csv:"bag_price" validate:"required,nonnegdecimal"`
	BagsAllowed string `csv:"bags_allowed" validate:"required,number"`
}

// reasons maps validator tags to the message shown after the field name.
var reasons = map[string]string{
	"required":      "cannot be an empty string.",
	"datetime":      "has an invalid date-time format.",
	"nonnegdecimal": "is not a non-negative decimal number.",
	"number":        "is not a non-negative integer number.",
}

// FieldValidator checks every column of a row against its expected format.
// It is installed first on every Reader.
type FieldValidator struct {
	validate *validator.Validate
}

// NewFieldValidator returns a FieldValidator with the custom
// "nonnegdecimal" tag registered and csv column names in its errors.
func NewFieldValidator() *FieldValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("csv")
	})
	_ = v.RegisterValidation("nonnegdecimal", validateNonNegDecimal)

	return &FieldValidator{validate: v}
}

// validateNonNegDecimal accepts decimal text that is >= 0.
func validateNonNegDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return !d.IsNegative()
}

// ValidateRow reports the first invalid field, in column order.
func (fv *FieldValidator) ValidateRow(line int, row Row) error {
	raw := rawFlight{
		FlightNo:    row["flight_no"],
		Origin:      row["origin"],
		Destination: row["destination"],
		Departure:   row["departure"],
		Arrival:     row["arrival"],
		BasePrice:   row["base_price"],
		BagPrice:    row["bag_price"],
		BagsAllowed: row["bags_allowed"],
	}

	err := fv.validate.Struct(raw)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &RowError{Line: line, Reason: err.Error(), Err: err}
	}
	fe := verrs[0]
	reason, ok := reasons[fe.Tag()]
	if !ok {
		reason = "failed " + fe.Tag() + " check."
	}

	return &RowError{Line: line, Field: fe.Field(), Reason: reason, Err: fe}
}

// assert interface
var _ RowValidator = (*FieldValidator)(nil)

// toRecord converts a row that passed FieldValidator.
func toRecord(line int, row Row) (core.Record, error) {
	dep, err := parseTime(line, "departure", row["departure"])
	if err != nil {
		return core.Record{}, err
	}
	arr, err := parseTime(line, "arrival", row["arrival"])
	if err != nil {
		return core.Record{}, err
	}
	base, err := parseDecimal(line, "base_price", row["base_price"])
	if err != nil {
		return core.Record{}, err
	}
	bag, err := parseDecimal(line, "bag_price", row["bag_price"])
	if err != nil {
		return core.Record{}, err
	}
	bags, err := parseCount(line, "bags_allowed", row["bags_allowed"])
	if err != nil {
		return core.Record{}, err
	}

	return core.Record{
		FlightNo:    row["flight_no"],
		Origin:      row["origin"],
		Destination: row["destination"],
		Departure:   dep,
		Arrival:     arr,
		BasePrice:   base,
		BagPrice:    bag,
		BagsAllowed: bags,
	}, nil
}
