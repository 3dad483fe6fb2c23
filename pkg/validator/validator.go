// Package validator wires gin's binding validator and the custom rules
// the API request types use.
package validator

import (
	"reflect"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	val "github.com/go-playground/validator/v10"
)

// CustomValidator replaces gin's default binding validator so custom
// rules register on a known engine.
type CustomValidator struct {
	once     sync.Once
	validate *val.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = val.New()
		v.validate.SetTagName("binding")
	})
}

// ValidateStruct implements binding.StructValidator.
func (v *CustomValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

// Engine implements binding.StructValidator.
func (v *CustomValidator) Engine() any {
	v.lazyinit()
	return v.validate
}

// DateKeyLayout is the canonical YYYY-MM-DD request form.
const DateKeyLayout = "2006-01-02"

// validDateKey accepts only canonical YYYY-MM-DD strings naming real
// calendar dates.
func validDateKey(fl val.FieldLevel) bool {
	s := fl.Field().String()
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateKeyLayout) == s
}

// RegisterCustom registers the custom rules on the active binding
// validator. Call after binding.Validator is replaced.
func RegisterCustom() {
	if v, ok := binding.Validator.Engine().(*val.Validate); ok {
		_ = v.RegisterValidation("datekey", validDateKey)
	}
}
